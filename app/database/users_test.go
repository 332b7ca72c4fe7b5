package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStudentID(t *testing.T) {
	// 3 existing students -> next sequence is 4
	assert.Equal(t, "STU20260004", formatStudentID(2026, 3+1))
	assert.Equal(t, "STU20250001", formatStudentID(2025, 1))
	assert.Equal(t, "STU20260123", formatStudentID(2026, 123))
	// sequence wider than 4 digits is kept intact
	assert.Equal(t, "STU202612345", formatStudentID(2026, 12345))
}
