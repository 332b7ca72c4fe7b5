package semesters

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/routes/auth"
)

// SetupSemestersRoutes sets up the semester reference-data API.
func SetupSemestersRoutes(app *fiber.App) {
	api := app.Group("/api/semesters")
	api.Use(auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/", GetSemestersAPI)
	api.Post("/", CreateSemesterAPI)
	api.Put("/:id/activate", ActivateSemesterAPI)
}
