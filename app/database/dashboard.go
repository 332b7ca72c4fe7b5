package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/services"
)

// resultRowColumns selects a result joined with its student and subject.
const resultRowColumns = `
	r.id, r.student_id, r.subject_id, r.marks_obtained, r.total_marks,
	r.grade, r.semester, r.academic_year, r.exam_type, r.remarks,
	r.created_at, r.updated_at,
	u.username, u.first_name, u.last_name, u.student_id,
	s.name, s.code, s.credits`

func scanResultRow(rows *sql.Rows) (*models.Result, error) {
	result := &models.Result{}
	student := &models.User{}
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
	student.Role = models.RoleStudent
	if studentNo.Valid {
		student.StudentID = &studentNo.String
	}
	subject.ID = result.SubjectID
	result.Student = student
	result.Subject = subject
	return result, nil
}

// GetDashboardStats returns the admin dashboard summary: entity counts,
// overall average percentage, the 5 most recent results and the top 5
// students by average percentage.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'student'`).
		Scan(&stats.TotalStudents)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&stats.TotalSubjects)
	if err != nil {
		return nil, fmt.Errorf("failed to count subjects: %w", err)
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&stats.TotalResults)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	var avg sql.NullFloat64
	err = db.QueryRow(`SELECT AVG(marks_obtained / total_marks * 100) FROM results`).
		Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average percentage: %w", err)
	}
	stats.AvgPercentage = services.Round2(avg.Float64)

	stats.RecentResults, err = recentResults(db, 5)
	if err != nil {
		return nil, err
	}

	stats.TopStudents, err = topStudents(db, 5)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func recentResults(db *sql.DB, limit int) ([]*models.Result, error) {
	query := `
		SELECT ` + resultRowColumns + `
		FROM results r
		JOIN users u ON r.student_id = u.id
		JOIN subjects s ON r.subject_id = s.id
		ORDER BY r.created_at DESC
		LIMIT $1
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result, err := scanResultRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

func topStudents(db *sql.DB, limit int) ([]*models.StudentStanding, error) {
	query := `
		SELECT u.id, u.username, u.first_name, u.last_name, u.student_id,
			AVG(r.marks_obtained / r.total_marks * 100) AS avg_percentage,
			COUNT(r.id) AS result_count
		FROM users u
		JOIN results r ON r.student_id = u.id
		WHERE u.role = 'student'
		GROUP BY u.id, u.username, u.first_name, u.last_name, u.student_id
		ORDER BY avg_percentage DESC
		LIMIT $1
	`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top students: %w", err)
	}
	defer rows.Close()

	var standings []*models.StudentStanding
	for rows.Next() {
		student := &models.User{Role: models.RoleStudent}
		standing := &models.StudentStanding{Student: student}
		var studentNo sql.NullString
		var avg float64

		err := rows.Scan(&student.ID, &student.Username, &student.FirstName,
			&student.LastName, &studentNo, &avg, &standing.ResultCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top student: %w", err)
		}
		if studentNo.Valid {
			student.StudentID = &studentNo.String
		}
		standing.AvgPercentage = services.Round2(avg)
		standings = append(standings, standing)
	}
	return standings, rows.Err()
}

// GetGradeDistribution returns the result count per grade label. Every
// label of the grading scale appears, zero-filled when unused.
func GetGradeDistribution(db *sql.DB) (map[string]int, error) {
	distribution := make(map[string]int, len(services.GradeLabels))
	for _, grade := range services.GradeLabels {
		distribution[grade] = 0
	}

	rows, err := db.Query(`SELECT grade, COUNT(*) FROM results GROUP BY grade`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var grade string
		var count int
		if err := rows.Scan(&grade, &count); err != nil {
			return nil, fmt.Errorf("failed to scan grade count: %w", err)
		}
		distribution[grade] = count
	}
	return distribution, rows.Err()
}

// GetSubjectPerformance returns the average percentage per subject name.
// Subjects with no results appear with 0.
func GetSubjectPerformance(db *sql.DB) (map[string]float64, error) {
	query := `
		SELECT s.name, COALESCE(AVG(r.marks_obtained / r.total_marks * 100), 0)
		FROM subjects s
		LEFT JOIN results r ON r.subject_id = s.id
		GROUP BY s.name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject performance: %w", err)
	}
	defer rows.Close()

	performance := make(map[string]float64)
	for rows.Next() {
		var name string
		var avg float64
		if err := rows.Scan(&name, &avg); err != nil {
			return nil, fmt.Errorf("failed to scan subject performance: %w", err)
		}
		performance[name] = services.Round2(avg)
	}
	return performance, rows.Err()
}

// GetMonthlyResultCounts buckets result creations per (year, month) over
// the trailing 365 days from asOf, ascending. Months with no results are
// omitted, matching the grouping semantics.
func GetMonthlyResultCounts(db *sql.DB, asOf time.Time) ([]*models.MonthlyCount, error) {
	query := `
		SELECT EXTRACT(YEAR FROM created_at)::int,
			EXTRACT(MONTH FROM created_at)::int,
			COUNT(*)
		FROM results
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY 1, 2
		ORDER BY 1, 2
	`
	rows, err := db.Query(query, asOf.AddDate(0, 0, -365), asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly result counts: %w", err)
	}
	defer rows.Close()

	var counts []*models.MonthlyCount
	for rows.Next() {
		var year, month, count int
		if err := rows.Scan(&year, &month, &count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		counts = append(counts, &models.MonthlyCount{
			Month: monthLabel(year, month),
			Count: count,
		})
	}
	return counts, rows.Err()
}

// monthLabel formats a (year, month) bucket as "Jan 2026".
func monthLabel(year, month int) string {
	return time.Month(month).String()[:3] + " " + strconv.Itoa(year)
}
