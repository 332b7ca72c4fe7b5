package results

import (
	"github.com/omnayani33/SRMS/app/models"
	"github.com/omnayani33/SRMS/app/services"
)

// BuildStudentStats summarizes one student's result set for their
// dashboard. results are expected newest first, as the queries return them.
func BuildStudentStats(results []*models.Result) *models.StudentStats {
	stats := &models.StudentStats{
		TotalExams:        len(results),
		GradeDistribution: make(map[string]int),
	}

	subjects := make(map[string]bool)
	var percentageSum float64

	for _, r := range results {
		subjects[r.SubjectID] = true
		percentageSum += r.Percentage()
		stats.GradeDistribution[r.Grade]++
	}
	stats.TotalSubjects = len(subjects)

	if len(results) > 0 {
		stats.AvgPercentage = services.Round2(percentageSum / float64(len(results)))
	}
	stats.GPA = services.CalculateGPA(results)

	recent := results
	if len(recent) > 5 {
		recent = recent[:5]
	}
	stats.RecentResults = recent

	return stats
}
