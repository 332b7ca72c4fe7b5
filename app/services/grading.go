package services

import (
	"math"

	"github.com/omnayani33/SRMS/app/models"
)

// GradeLabels is the fixed grading scale, ordered best to worst.
var GradeLabels = []string{"A+", "A", "B+", "B", "C+", "C", "F"}

var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  3.7,
	"B+": 3.3,
	"B":  3.0,
	"C+": 2.7,
	"C":  2.3,
	"F":  0.0,
}

// Percentage converts obtained/total marks to a percentage.
// A non-positive total yields 0.
func Percentage(obtained, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return obtained / total * 100
}

// GradeForPercentage maps a percentage to a letter grade. Thresholds are
// evaluated top-down and inclusive at the boundary.
func GradeForPercentage(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C+"
	case percentage >= 40:
		return "C"
	default:
		return "F"
	}
}

// GradePoint returns the grade-point value for a letter grade.
// Unknown grades count as 0.
func GradePoint(grade string) float64 {
	return gradePoints[grade]
}

// CalculateGPA computes the credit-weighted average grade point across a
// result set. Each result's grade is taken as stored, not recomputed. A
// result without a loaded subject contributes the default credit weight.
// Returns 0 when the set is empty or total credits is 0.
func CalculateGPA(results []*models.Result) float64 {
	if len(results) == 0 {
		return 0
	}

	var totalPoints float64
	var totalCredits int

	for _, r := range results {
		credits := models.DefaultCredits
		if r.Subject != nil {
			credits = r.Subject.Credits
		}
		totalPoints += GradePoint(r.Grade) * float64(credits)
		totalCredits += credits
	}

	if totalCredits == 0 {
		return 0
	}
	return Round2(totalPoints / float64(totalCredits))
}

// Round2 rounds to two decimal places, matching how percentages and GPA
// values are presented.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
