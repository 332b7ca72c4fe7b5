package results

import (
	"database/sql"
	"fmt"

	"github.com/omnayani33/SRMS/app/database"
	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/services"
)

const resultColumns = `
	r.id, r.student_id, r.subject_id, r.marks_obtained, r.total_marks,
	r.grade, r.semester, r.academic_year, r.exam_type, r.remarks,
	r.created_at, r.updated_at,
	u.username, u.first_name, u.last_name, u.student_id,
	s.name, s.code, s.credits`

func scanResult(rows *sql.Rows) (*models.Result, error) {
	result := &models.Result{}
	student := &models.User{Role: models.RoleStudent}
	subject := &models.Subject{}
	var remarks sql.NullString
	var studentNo sql.NullString

	err := rows.Scan(
		&result.ID, &result.StudentID, &result.SubjectID,
		&result.MarksObtained, &result.TotalMarks, &result.Grade,
		&result.Semester, &result.AcademicYear, &result.ExamType, &remarks,
		&result.CreatedAt, &result.UpdatedAt,
		&student.Username, &student.FirstName, &student.LastName, &studentNo,
		&subject.Name, &subject.Code, &subject.Credits,
	)
	if err != nil {
		return nil, err
	}

	result.Remarks = remarks.String
	student.ID = result.StudentID
	if studentNo.Valid {
		student.StudentID = &studentNo.String
	}
	subject.ID = result.SubjectID
	result.Student = student
	result.Subject = subject
	return result, nil
}

// GetResults lists results joined with student and subject, newest first.
// search matches student name, subject name or code; semester filters the
// semester label.
func GetResults(db *sql.DB, search, semester string) ([]*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN users u ON r.student_id = u.id
		JOIN subjects s ON r.subject_id = s.id
	`
	var conditions []string
	var args []interface{}

	if search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf(
			`(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR s.name ILIKE $%d OR s.code ILIKE $%d)`,
			len(args), len(args), len(args), len(args)))
	}
	if semester != "" {
		args = append(args, semester)
		conditions = append(conditions, fmt.Sprintf(`r.semester = $%d`, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func GetResultByID(db *sql.DB, id string) (*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN users u ON r.student_id = u.id
		JOIN subjects s ON r.subject_id = s.id
		WHERE r.id = $1
	`
	rows, err := db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, database.ErrNotFound
	}
	return scanResult(rows)
}

// GetResultsByStudentID fetches one student's results, newest first.
func GetResultsByStudentID(db *sql.DB, studentID string) ([]*models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results r
		JOIN users u ON r.student_id = u.id
		JOIN subjects s ON r.subject_id = s.id
		WHERE r.student_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

// duplicateExists checks for another result with the same exam context
// tuple. excludeID may be empty.
func duplicateExists(db *sql.DB, result *models.Result, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM results
			WHERE student_id = $1 AND subject_id = $2
				AND semester = $3 AND exam_type = $4
				AND ($5 = '' OR id::text <> $5)
		)
	`
	var exists bool
	err := db.QueryRow(query, result.StudentID, result.SubjectID,
		result.Semester, result.ExamType, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate result: %w", err)
	}
	return exists, nil
}

// CreateResult persists a new graded result. The grade is always computed
// here; the unique constraint on the exam context backs the duplicate
// pre-check under concurrent writers.
func CreateResult(db *sql.DB, result *models.Result) error {
	if _, err := database.GetStudentByID(db, result.StudentID); err != nil {
		return err
	}
	if _, err := database.GetSubjectByID(db, result.SubjectID); err != nil {
		return err
	}

	if exists, err := duplicateExists(db, result, ""); err != nil {
		return err
	} else if exists {
		return database.ErrDuplicateResult
	}

	result.Grade = services.GradeForPercentage(result.Percentage())

	query := `
		INSERT INTO results (student_id, subject_id, marks_obtained, total_marks,
			grade, semester, academic_year, exam_type, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		result.StudentID, result.SubjectID, result.MarksObtained, result.TotalMarks,
		result.Grade, result.Semester, result.AcademicYear, result.ExamType,
		nullIfEmpty(result.Remarks),
	).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return database.TranslateConstraint(err)
	}
	return nil
}

// UpdateResult applies field changes, recomputes the grade unconditionally
// and bumps the update timestamp.
func UpdateResult(db *sql.DB, result *models.Result) error {
	if _, err := GetResultByID(db, result.ID); err != nil {
		return err
	}

	if exists, err := duplicateExists(db, result, result.ID); err != nil {
		return err
	} else if exists {
		return database.ErrDuplicateResult
	}

	result.Grade = services.GradeForPercentage(result.Percentage())

	query := `
		UPDATE results
		SET student_id = $1, subject_id = $2, marks_obtained = $3, total_marks = $4,
			grade = $5, semester = $6, academic_year = $7, exam_type = $8,
			remarks = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`
	err := db.QueryRow(query,
		result.StudentID, result.SubjectID, result.MarksObtained, result.TotalMarks,
		result.Grade, result.Semester, result.AcademicYear, result.ExamType,
		nullIfEmpty(result.Remarks), result.ID,
	).Scan(&result.CreatedAt, &result.UpdatedAt)
	if err == sql.ErrNoRows {
		return database.ErrNotFound
	}
	if err != nil {
		return database.TranslateConstraint(err)
	}
	return nil
}

func DeleteResult(db *sql.DB, id string) error {
	res, err := db.Exec(`DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
