package models

// DashboardStats holds the admin dashboard summary.
type DashboardStats struct {
	TotalStudents int                `json:"total_students"`
	TotalSubjects int                `json:"total_subjects"`
	TotalResults  int                `json:"total_results"`
	AvgPercentage float64            `json:"avg_percentage"`
	RecentResults []*Result          `json:"recent_results"`
	TopStudents   []*StudentStanding `json:"top_students"`
}

// StudentStanding ranks a student by average percentage across their results.
type StudentStanding struct {
	Student       *User   `json:"student"`
	AvgPercentage float64 `json:"avg_percentage"`
	ResultCount   int     `json:"result_count"`
}

// MonthlyCount is one bucket of the trailing-year result count series,
// labeled with the abbreviated month name and year, e.g. "Mar 2026".
type MonthlyCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// StudentStats is the summary a student sees on their own dashboard.
type StudentStats struct {
	TotalSubjects     int            `json:"total_subjects"`
	TotalExams        int            `json:"total_exams"`
	AvgPercentage     float64        `json:"avg_percentage"`
	GPA               float64        `json:"gpa"`
	GradeDistribution map[string]int `json:"grade_distribution"`
	RecentResults     []*Result      `json:"recent_results"`
}
