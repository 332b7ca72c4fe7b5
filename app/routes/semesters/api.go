package semesters

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/models"
)

var validate = validator.New()

func GetSemestersAPI(c *fiber.Ctx) error {
	semesters, err := database.GetSemesters(config.GetDB())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"semesters": semesters,
		"count":     len(semesters),
	})
}

type SemesterRequest struct {
	Name      string     `json:"name" validate:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	IsActive  bool       `json:"is_active"`
}

func CreateSemesterAPI(c *fiber.Ctx) error {
	var req SemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	semester := &models.Semester{
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	}

	if err := database.CreateSemester(config.GetDB(), semester); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Semester created successfully",
		"semester": semester,
	})
}

// ActivateSemesterAPI marks one semester active and deactivates the rest.
func ActivateSemesterAPI(c *fiber.Ctx) error {
	if err := database.SetActiveSemester(config.GetDB(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Semester activated"})
}
