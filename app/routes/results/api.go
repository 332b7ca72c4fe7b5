package results

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/omnayani33/SRMS/app/config"
	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/routes/auth"
)

var validate = validator.New()

// GetResultsAPI lists results with optional search and semester filters.
func GetResultsAPI(c *fiber.Ctx) error {
	search := c.Query("search")
	semester := c.Query("semester")

	results, err := GetResults(config.GetDB(), search, semester)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
	})
}

func GetResultAPI(c *fiber.Ctx) error {
	result, err := GetResultByID(config.GetDB(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

type ResultRequest struct {
	StudentID     string          `json:"student_id" validate:"required,uuid"`
	SubjectID     string          `json:"subject_id" validate:"required,uuid"`
	MarksObtained float64         `json:"marks_obtained" validate:"gte=0"`
	TotalMarks    float64         `json:"total_marks" validate:"required,gt=0"`
	Semester      string          `json:"semester" validate:"required"`
	AcademicYear  string          `json:"academic_year" validate:"required"`
	ExamType      models.ExamType `json:"exam_type" validate:"required"`
	Remarks       string          `json:"remarks"`
}

func (r *ResultRequest) toModel() *models.Result {
	return &models.Result{
		StudentID:     r.StudentID,
		SubjectID:     r.SubjectID,
		MarksObtained: r.MarksObtained,
		TotalMarks:    r.TotalMarks,
		Semester:      r.Semester,
		AcademicYear:  r.AcademicYear,
		ExamType:      r.ExamType,
		Remarks:       r.Remarks,
	}
}

// CreateResultAPI records a graded result. The grade field is derived,
// never taken from the request.
func CreateResultAPI(c *fiber.Ctx) error {
	var req ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.ExamType.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exam type"})
	}

	result := req.toModel()
	if err := CreateResult(config.GetDB(), result); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Result added successfully",
		"result":  result,
	})
}

func UpdateResultAPI(c *fiber.Ctx) error {
	var req ResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if !req.ExamType.Valid() {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid exam type"})
	}

	result := req.toModel()
	result.ID = c.Params("id")
	if err := UpdateResult(config.GetDB(), result); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Result updated successfully",
		"result":  result,
	})
}

func DeleteResultAPI(c *fiber.Ctx) error {
	if err := DeleteResult(config.GetDB(), c.Params("id")); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Result deleted successfully"})
}

// GetStudentResultsAPI returns one student's results and summary. Admins
// may read any student; students only their own.
func GetStudentResultsAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	caller := auth.CurrentUser(c)
	if caller.Role != models.RoleAdmin && caller.ID != studentID {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
	}

	results, err := GetResultsByStudentID(config.GetDB(), studentID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"results": results,
		"count":   len(results),
		"stats":   BuildStudentStats(results),
	})
}
