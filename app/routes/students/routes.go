package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/routes/auth"
)

// SetupStudentsRoutes sets up the admin student directory API.
func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}
