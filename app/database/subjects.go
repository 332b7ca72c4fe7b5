package database

import (
	"database/sql"
	"fmt"

	"github.com/omnayani33/SRMS/app/models"
)

func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT id, name, code, description, credits, created_at
			  FROM subjects ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		subject := &models.Subject{}
		var description sql.NullString
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.Code,
			&description, &subject.Credits, &subject.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subject.Description = description.String
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	subject := &models.Subject{}
	var description sql.NullString

	query := `SELECT id, name, code, description, credits, created_at
			  FROM subjects WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&subject.ID, &subject.Name, &subject.Code,
		&description, &subject.Credits, &subject.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject: %w", err)
	}
	subject.Description = description.String
	return subject, nil
}

func subjectColumnTaken(db *sql.DB, column, value, excludeID string) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE %s = $1 AND ($2 = '' OR id::text <> $2))`,
		column,
	)
	var taken bool
	if err := db.QueryRow(query, value, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check subject %s: %w", column, err)
	}
	return taken, nil
}

func checkSubjectConflicts(db *sql.DB, subject *models.Subject, excludeID string) error {
	if taken, err := subjectColumnTaken(db, "name", subject.Name, excludeID); err != nil {
		return err
	} else if taken {
		return ErrSubjectNameTaken
	}
	if taken, err := subjectColumnTaken(db, "code", subject.Code, excludeID); err != nil {
		return err
	} else if taken {
		return ErrSubjectCodeTaken
	}
	return nil
}

func CreateSubject(db *sql.DB, subject *models.Subject) error {
	if err := checkSubjectConflicts(db, subject, ""); err != nil {
		return err
	}
	if subject.Credits <= 0 {
		subject.Credits = models.DefaultCredits
	}

	query := `INSERT INTO subjects (name, code, description, credits)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`
	err := db.QueryRow(query, subject.Name, subject.Code,
		nullIfEmpty(subject.Description), subject.Credits).
		Scan(&subject.ID, &subject.CreatedAt)
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	if err := checkSubjectConflicts(db, subject, subject.ID); err != nil {
		return err
	}
	if subject.Credits <= 0 {
		subject.Credits = models.DefaultCredits
	}

	query := `UPDATE subjects
			  SET name = $1, code = $2, description = $3, credits = $4
			  WHERE id = $5
			  RETURNING created_at`
	err := db.QueryRow(query, subject.Name, subject.Code,
		nullIfEmpty(subject.Description), subject.Credits, subject.ID).
		Scan(&subject.CreatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

// DeleteSubject removes a subject unless results still reference it.
// The FK on results backs the check under concurrent writers.
func DeleteSubject(db *sql.DB, id string) error {
	var referenced bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM results WHERE subject_id = $1)`, id).
		Scan(&referenced)
	if err != nil {
		return fmt.Errorf("failed to check subject references: %w", err)
	}
	if referenced {
		return ErrSubjectInUse
	}

	res, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return TranslateConstraint(err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}
