package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnayani33/SRMS/app/models"
)

func TestBuildStudentStats_Empty(t *testing.T) {
	stats := BuildStudentStats(nil)

	assert.Equal(t, 0, stats.TotalSubjects)
	assert.Equal(t, 0, stats.TotalExams)
	assert.Equal(t, 0.0, stats.AvgPercentage)
	assert.Equal(t, 0.0, stats.GPA)
	assert.Empty(t, stats.GradeDistribution)
	assert.Empty(t, stats.RecentResults)
}

func TestBuildStudentStats(t *testing.T) {
	math := &models.Subject{ID: "sub-math", Name: "Mathematics", Credits: 4}
	physics := &models.Subject{ID: "sub-phy", Name: "Physics", Credits: 4}

	results := []*models.Result{
		{SubjectID: "sub-math", Subject: math, MarksObtained: 85, TotalMarks: 100, Grade: "A"},
		{SubjectID: "sub-phy", Subject: physics, MarksObtained: 60, TotalMarks: 100, Grade: "B"},
		{SubjectID: "sub-math", Subject: math, MarksObtained: 95, TotalMarks: 100, Grade: "A+"},
	}

	stats := BuildStudentStats(results)

	assert.Equal(t, 2, stats.TotalSubjects)
	assert.Equal(t, 3, stats.TotalExams)
	assert.Equal(t, 80.0, stats.AvgPercentage)
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "A+": 1}, stats.GradeDistribution)
	assert.Len(t, stats.RecentResults, 3)

	// (3.7*4 + 3.0*4 + 4.0*4) / 12 = 3.57
	assert.Equal(t, 3.57, stats.GPA)
}

func TestBuildStudentStats_RecentCappedAtFive(t *testing.T) {
	subject := &models.Subject{ID: "sub-1", Credits: 3}
	var results []*models.Result
	for i := 0; i < 8; i++ {
		results = append(results, &models.Result{
			SubjectID: "sub-1", Subject: subject,
			MarksObtained: 50, TotalMarks: 100, Grade: "C+",
		})
	}

	stats := BuildStudentStats(results)
	require.Len(t, stats.RecentResults, 5)
	assert.Equal(t, 8, stats.TotalExams)
	assert.Equal(t, results[0], stats.RecentResults[0])
}
