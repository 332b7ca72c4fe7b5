package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/omnayani33/SRMS/app/models"
)

const userColumns = `id, username, email, password, role, first_name, last_name,
	student_id, phone, address, date_of_birth, created_at, updated_at`

// generatedIDAttempts bounds the retry loop for generated student IDs.
const generatedIDAttempts = 5

func scanUser(row interface{ Scan(...interface{}) error }) (*models.User, error) {
	user := &models.User{}
	var studentID sql.NullString
	var phone, address sql.NullString
	var dateOfBirth sql.NullTime

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Role,
		&user.FirstName, &user.LastName, &studentID, &phone, &address,
		&dateOfBirth, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if studentID.Valid {
		user.StudentID = &studentID.String
	}
	user.Phone = phone.String
	user.Address = address.String
	if dateOfBirth.Valid {
		user.DateOfBirth = &dateOfBirth.Time
	}
	return user, nil
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(db.QueryRow(query, email))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

// columnTaken checks whether any user other than excludeID already uses the
// given value for the column. excludeID may be empty.
func columnTaken(db *sql.DB, column, value, excludeID string) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1 AND ($2 = '' OR id::text <> $2))`,
		column,
	)
	var taken bool
	if err := db.QueryRow(query, value, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", column, err)
	}
	return taken, nil
}

// checkUserConflicts returns the domain conflict error for an email,
// username or student ID already belonging to a different user.
func checkUserConflicts(db *sql.DB, user *models.User, excludeID string) error {
	if taken, err := columnTaken(db, "email", user.Email, excludeID); err != nil {
		return err
	} else if taken {
		return ErrEmailTaken
	}

	if taken, err := columnTaken(db, "username", user.Username, excludeID); err != nil {
		return err
	} else if taken {
		return ErrUsernameTaken
	}

	if user.StudentID != nil {
		if taken, err := columnTaken(db, "student_id", *user.StudentID, excludeID); err != nil {
			return err
		} else if taken {
			return ErrStudentIDTaken
		}
	}
	return nil
}

func CountStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE role = 'student'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

func formatStudentID(year, sequence int) string {
	return fmt.Sprintf("STU%d%04d", year, sequence)
}

func insertUser(db *sql.DB, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, role, first_name, last_name,
			student_id, phone, address, date_of_birth)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		user.Username, user.Email, user.Password, user.Role,
		user.FirstName, user.LastName, user.StudentID,
		nullIfEmpty(user.Phone), nullIfEmpty(user.Address), user.DateOfBirth,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

// CreateUser persists a new account. Students without an explicit student ID
// get a generated STU<year><seq> one. The count-then-format pattern can
// collide under concurrent registrations, so the insert retries with the
// next sequence number when the unique constraint fires.
func CreateUser(db *sql.DB, user *models.User) error {
	if err := checkUserConflicts(db, user, ""); err != nil {
		return err
	}

	if user.Role != models.RoleStudent || user.StudentID != nil {
		return insertUser(db, user)
	}

	count, err := CountStudents(db)
	if err != nil {
		return err
	}

	year := time.Now().Year()
	for attempt := 0; attempt < generatedIDAttempts; attempt++ {
		generated := formatStudentID(year, count+1+attempt)
		user.StudentID = &generated
		err = insertUser(db, user)
		if !errors.Is(err, ErrStudentIDTaken) {
			return err
		}
	}
	return ErrStudentIDTaken
}

// GetStudents lists student accounts, optionally filtered by a search term
// over name, email and student ID.
func GetStudents(db *sql.DB, search string) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'student'`
	args := []interface{}{}

	if search != "" {
		query += ` AND (first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1 OR student_id ILIKE $1)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		student, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

// GetStudentByID fetches a user and verifies the student role.
func GetStudentByID(db *sql.DB, id string) (*models.User, error) {
	user, err := GetUserByID(db, id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleStudent {
		return nil, ErrNotStudent
	}
	return user, nil
}

// UpdateStudent applies an admin edit to a student account. The target must
// exist and hold the student role.
func UpdateStudent(db *sql.DB, user *models.User) error {
	if _, err := GetStudentByID(db, user.ID); err != nil {
		return err
	}
	if err := checkUserConflicts(db, user, user.ID); err != nil {
		return err
	}

	query := `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4,
			student_id = $5, phone = $6, address = $7, date_of_birth = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := db.QueryRow(query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.StudentID, nullIfEmpty(user.Phone), nullIfEmpty(user.Address),
		user.DateOfBirth, user.ID,
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

// DeleteStudent removes a student account. The results FK cascade deletes
// the student's results with it.
func DeleteStudent(db *sql.DB, id string) error {
	if _, err := GetStudentByID(db, id); err != nil {
		return err
	}

	res, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile applies a self-service profile edit. Role and student ID
// are never touched here.
func UpdateProfile(db *sql.DB, user *models.User) error {
	if err := checkUserConflicts(db, user, user.ID); err != nil {
		return err
	}

	query := `
		UPDATE users
		SET username = $1, email = $2, first_name = $3, last_name = $4,
			phone = $5, address = $6, date_of_birth = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err := db.QueryRow(query,
		user.Username, user.Email, user.FirstName, user.LastName,
		nullIfEmpty(user.Phone), nullIfEmpty(user.Address), user.DateOfBirth,
		user.ID,
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return TranslateConstraint(err)
	}
	return nil
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	res, err := db.Exec(`UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
