package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateConstraint_UniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"users_email_key", ErrEmailTaken},
		{"users_username_key", ErrUsernameTaken},
		{"users_student_id_key", ErrStudentIDTaken},
		{"subjects_name_key", ErrSubjectNameTaken},
		{"subjects_code_key", ErrSubjectCodeTaken},
		{"semesters_name_key", ErrSemesterNameTaken},
		{"results_exam_context_key", ErrDuplicateResult},
	}

	for _, tt := range tests {
		err := &pq.Error{Code: pqUniqueViolation, Constraint: tt.constraint}
		assert.Equal(t, tt.want, TranslateConstraint(err), "constraint %s", tt.constraint)
	}
}

func TestTranslateConstraint_ForeignKey(t *testing.T) {
	err := &pq.Error{Code: pqForeignKeyViolation, Constraint: "results_subject_id_fkey"}
	assert.Equal(t, ErrSubjectInUse, TranslateConstraint(err))
}

func TestTranslateConstraint_PassthroughUnknown(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, TranslateConstraint(plain))

	unknown := &pq.Error{Code: pqUniqueViolation, Constraint: "something_else"}
	assert.Equal(t, error(unknown), TranslateConstraint(unknown))

	wrapped := fmt.Errorf("insert failed: %w", &pq.Error{Code: pqUniqueViolation, Constraint: "users_email_key"})
	assert.Equal(t, ErrEmailTaken, TranslateConstraint(wrapped))
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(ErrDuplicateResult))
	assert.True(t, IsConflict(fmt.Errorf("wrapped: %w", ErrSubjectCodeTaken)))
	assert.False(t, IsConflict(ErrNotFound))
	assert.False(t, IsConflict(errors.New("boom")))
}
