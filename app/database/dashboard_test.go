package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 2026", monthLabel(2026, 1))
	assert.Equal(t, "Sep 2025", monthLabel(2025, 9))
	assert.Equal(t, "Dec 2024", monthLabel(2024, 12))
}
