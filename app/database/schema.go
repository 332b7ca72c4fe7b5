package database

import (
	"database/sql"
	"log"
)

// EnsureSchema creates the tables and constraints if they do not exist.
// It is idempotent and runs at service start.
func EnsureSchema(db *sql.DB) error {
	log.Println("Applying database schema...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(80) NOT NULL,
			email VARCHAR(120) NOT NULL,
			password VARCHAR(256) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'student' CHECK (role IN ('admin', 'student')),
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			student_id VARCHAR(20),
			phone VARCHAR(20),
			address TEXT,
			date_of_birth DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT users_username_key UNIQUE (username),
			CONSTRAINT users_email_key UNIQUE (email),
			CONSTRAINT users_student_id_key UNIQUE (student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) NOT NULL,
			code VARCHAR(20) NOT NULL,
			description TEXT,
			credits INTEGER NOT NULL DEFAULT 3 CHECK (credits > 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT subjects_name_key UNIQUE (name),
			CONSTRAINT subjects_code_key UNIQUE (code)
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			marks_obtained NUMERIC(6,2) NOT NULL CHECK (marks_obtained >= 0),
			total_marks NUMERIC(6,2) NOT NULL CHECK (total_marks > 0),
			grade VARCHAR(5) NOT NULL,
			semester VARCHAR(50) NOT NULL,
			academic_year VARCHAR(20) NOT NULL,
			exam_type VARCHAR(50) NOT NULL DEFAULT 'Final',
			remarks TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT results_exam_context_key UNIQUE (student_id, subject_id, semester, exam_type)
		)`,
		`CREATE TABLE IF NOT EXISTS semesters (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) NOT NULL,
			start_date DATE,
			end_date DATE,
			is_active BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT semesters_name_key UNIQUE (name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_student_id ON results(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_subject_id ON results(subject_id)`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Schema statement failed: %v", err)
			return err
		}
	}

	log.Println("Database schema is up to date")
	return nil
}
