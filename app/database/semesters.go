package database

import (
	"database/sql"
	"fmt"

	"github.com/omnayani33/SRMS/app/models"
)

func GetSemesters(db *sql.DB) ([]*models.Semester, error) {
	query := `SELECT id, name, start_date, end_date, is_active, created_at
			  FROM semesters ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		semester := &models.Semester{}
		var start, end sql.NullTime
		if err := rows.Scan(&semester.ID, &semester.Name, &start, &end,
			&semester.IsActive, &semester.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan semester: %w", err)
		}
		if start.Valid {
			semester.StartDate = &start.Time
		}
		if end.Valid {
			semester.EndDate = &end.Time
		}
		semesters = append(semesters, semester)
	}
	return semesters, rows.Err()
}

func CreateSemester(db *sql.DB, semester *models.Semester) error {
	query := `INSERT INTO semesters (name, start_date, end_date, is_active)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	err := db.QueryRow(query, semester.Name, semester.StartDate,
		semester.EndDate, semester.IsActive).
		Scan(&semester.ID, &semester.CreatedAt)
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

// SetActiveSemester marks one semester active and the rest inactive in a
// single transaction.
func SetActiveSemester(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE semesters SET is_active = false WHERE is_active = true`); err != nil {
		return fmt.Errorf("failed to deactivate semesters: %w", err)
	}

	res, err := tx.Exec(`UPDATE semesters SET is_active = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to activate semester: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
