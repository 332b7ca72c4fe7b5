package results

import (
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/routes/auth"
)

// SetupResultsRoutes sets up the result record API. Mutations and the full
// listing are admin-only; a student may read their own results.
func SetupResultsRoutes(app *fiber.App) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.AdminOnly, GetResultsAPI)
	api.Post("/", auth.AdminOnly, CreateResultAPI)
	api.Get("/student/:id", GetStudentResultsAPI)
	api.Get("/:id", auth.AdminOnly, GetResultAPI)
	api.Put("/:id", auth.AdminOnly, UpdateResultAPI)
	api.Delete("/:id", auth.AdminOnly, DeleteResultAPI)
}
