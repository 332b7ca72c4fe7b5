package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnayani33/SRMS/app/models"
)

func TestGradeForPercentage_Thresholds(t *testing.T) {
	tests := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.999, "A"},
		{80, "A"},
		{79.5, "B+"},
		{70, "B+"},
		{60, "B"},
		{50, "C+"},
		{45, "C"},
		{40, "C"},
		{39.999, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeForPercentage(tt.percentage), "percentage %v", tt.percentage)
	}
}

func TestGradeForPercentage_AlwaysKnownLabel(t *testing.T) {
	known := make(map[string]bool)
	for _, g := range GradeLabels {
		known[g] = true
	}

	for p := -10.0; p <= 110.0; p += 0.5 {
		assert.True(t, known[GradeForPercentage(p)], "percentage %v produced unknown grade", p)
	}
}

func TestGradeLabels_MatchGradePoints(t *testing.T) {
	require.Len(t, GradeLabels, 7)
	seen := make(map[string]bool)
	for _, g := range GradeLabels {
		assert.False(t, seen[g], "duplicate grade label %s", g)
		seen[g] = true
		_, ok := gradePoints[g]
		assert.True(t, ok, "grade %s has no grade point", g)
	}
	assert.Len(t, gradePoints, 7)
}

func TestGradePoint_Monotonic(t *testing.T) {
	prev := -1.0
	for p := 0.0; p <= 100.0; p += 0.25 {
		point := GradePoint(GradeForPercentage(p))
		assert.GreaterOrEqual(t, point, prev, "grade point decreased at percentage %v", p)
		prev = point
	}
}

func TestGradePoint_UnknownGrade(t *testing.T) {
	assert.Equal(t, 0.0, GradePoint("X"))
	assert.Equal(t, 0.0, GradePoint(""))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 45.0, Percentage(45, 100))
	assert.Equal(t, 50.0, Percentage(25, 50))
	assert.Equal(t, 0.0, Percentage(45, 0), "zero total must not divide by zero")
	assert.Equal(t, 0.0, Percentage(45, -10))
}

func TestGradeScenarios(t *testing.T) {
	// 45/100 -> C
	p := Percentage(45, 100)
	require.Equal(t, 45.0, p)
	assert.Equal(t, "C", GradeForPercentage(p))

	// 92/100 -> A+ worth 4.0
	p = Percentage(92, 100)
	grade := GradeForPercentage(p)
	assert.Equal(t, "A+", grade)
	assert.Equal(t, 4.0, GradePoint(grade))
}

func TestCalculateGPA_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CalculateGPA(nil))
	assert.Equal(t, 0.0, CalculateGPA([]*models.Result{}))
}

func TestCalculateGPA_ZeroCredits(t *testing.T) {
	results := []*models.Result{
		{Grade: "A", Subject: &models.Subject{Credits: 0}},
		{Grade: "B", Subject: &models.Subject{Credits: 0}},
	}
	assert.Equal(t, 0.0, CalculateGPA(results))
}

func TestCalculateGPA_CreditWeighted(t *testing.T) {
	math4 := &models.Subject{Name: "Mathematics", Credits: 4}
	results := []*models.Result{
		{Grade: "A", Subject: math4},
		{Grade: "B", Subject: math4},
	}
	// (3.7*4 + 3.0*4) / 8 = 3.35
	assert.Equal(t, 3.35, CalculateGPA(results))
}

func TestCalculateGPA_UnequalWeights(t *testing.T) {
	results := []*models.Result{
		{Grade: "A+", Subject: &models.Subject{Credits: 5}},
		{Grade: "F", Subject: &models.Subject{Credits: 1}},
	}
	// (4.0*5 + 0.0*1) / 6 = 3.33
	assert.Equal(t, 3.33, CalculateGPA(results))
}

func TestCalculateGPA_DefaultCreditsWhenSubjectMissing(t *testing.T) {
	results := []*models.Result{
		{Grade: "B+"},
		{Grade: "B+", Subject: &models.Subject{Credits: 3}},
	}
	assert.Equal(t, 3.3, CalculateGPA(results))
}
