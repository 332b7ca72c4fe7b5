package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/routes/auth"
)

// SetupSubjectsRoutes sets up the admin subject API.
func SetupSubjectsRoutes(app *fiber.App) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)
	api.Post("/", CreateSubjectAPI)
	api.Put("/:id", UpdateSubjectAPI)
	api.Delete("/:id", DeleteSubjectAPI)
}
