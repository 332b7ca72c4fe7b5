package database

import (
	"errors"

	"github.com/lib/pq"
)

// Domain errors surfaced by the query layer. Handlers map these to HTTP
// status codes; anything else is treated as a persistence failure.
var (
	ErrNotFound          = errors.New("record not found")
	ErrNotStudent        = errors.New("user is not a student")
	ErrEmailTaken        = errors.New("email already registered")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrStudentIDTaken    = errors.New("student ID already exists")
	ErrSubjectNameTaken  = errors.New("subject name already exists")
	ErrSubjectCodeTaken  = errors.New("subject code already exists")
	ErrSemesterNameTaken = errors.New("semester name already exists")
	ErrSubjectInUse      = errors.New("subject is referenced by existing results")
	ErrDuplicateResult   = errors.New("result already exists for this student, subject, semester and exam type")
)

// IsConflict reports whether err is a uniqueness or reference violation.
func IsConflict(err error) bool {
	for _, conflict := range []error{
		ErrEmailTaken, ErrUsernameTaken, ErrStudentIDTaken,
		ErrSubjectNameTaken, ErrSubjectCodeTaken, ErrSemesterNameTaken,
		ErrSubjectInUse, ErrDuplicateResult,
	} {
		if errors.Is(err, conflict) {
			return true
		}
	}
	return false
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// TranslateConstraint maps a pq constraint violation to the domain error
// for the constraint that fired. Application-level pre-checks give friendly
// errors on the common path; the constraints close the race under
// concurrent writers.
func TranslateConstraint(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		switch pqErr.Constraint {
		case "users_email_key":
			return ErrEmailTaken
		case "users_username_key":
			return ErrUsernameTaken
		case "users_student_id_key":
			return ErrStudentIDTaken
		case "subjects_name_key":
			return ErrSubjectNameTaken
		case "subjects_code_key":
			return ErrSubjectCodeTaken
		case "semesters_name_key":
			return ErrSemesterNameTaken
		case "results_exam_context_key":
			return ErrDuplicateResult
		}
	case pqForeignKeyViolation:
		if pqErr.Constraint == "results_subject_id_fkey" {
			return ErrSubjectInUse
		}
	}
	return err
}
