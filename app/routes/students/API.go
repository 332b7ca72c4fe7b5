package students

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/routes/auth"
)

var validate = validator.New()

// DefaultStudentPassword is assigned when an admin adds a student without
// choosing a password.
const DefaultStudentPassword = "student123"

func GetStudentsAPI(c *fiber.Ctx) error {
	search := c.Query("search")

	students, err := database.GetStudents(config.GetDB(), search)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(student)
}

type StudentRequest struct {
	Username    string     `json:"username" validate:"required,min=3,max=80"`
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"omitempty,min=8"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	StudentID   *string    `json:"student_id"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// CreateStudentAPI adds a student account. An explicit student ID is
// conflict-checked; otherwise one is generated.
func CreateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	password := req.Password
	if password == "" {
		password = DefaultStudentPassword
	}
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	student := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        models.RoleStudent,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		StudentID:   req.StudentID,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	}

	if err := database.CreateUser(config.GetDB(), student); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student added successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.User{
		ID:          c.Params("id"),
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		StudentID:   req.StudentID,
		Phone:       req.Phone,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}

// DeleteStudentAPI removes a student; their results go with them.
func DeleteStudentAPI(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
