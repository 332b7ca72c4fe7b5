package main

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/routes/auth"
	"github.com/omnayani33/SRMS/app/routes/dashboard"
	"github.com/omnayani33/SRMS/app/routes/results"
	"github.com/omnayani33/SRMS/app/routes/semesters"
	"github.com/omnayani33/SRMS/app/routes/students"
	"github.com/omnayani33/SRMS/app/routes/subjects"
)

// errorHandler maps domain errors from the query layer to HTTP status
// codes. Anything unrecognized is reported as a persistence failure.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrNotStudent):
		code = fiber.StatusNotFound
		message = err.Error()
	case database.IsConflict(err):
		code = fiber.StatusConflict
		message = err.Error()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	default:
		log.Printf("Unhandled error: %v", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.EnsureSchema(config.GetDB()); err != nil {
		log.Fatal("Failed to apply schema:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	subjects.SetupSubjectsRoutes(app)
	results.SetupResultsRoutes(app)
	semesters.SetupSemestersRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
