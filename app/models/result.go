package models

import "time"

// Result stores a student's marks for a subject in a specific exam context.
// The tuple (student, subject, semester, exam type) is unique.
type Result struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID     string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID     string    `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	MarksObtained float64   `json:"marks_obtained" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	TotalMarks    float64   `json:"total_marks" gorm:"not null;type:decimal(6,2)" validate:"gt=0"`
	Grade         string    `json:"grade" gorm:"type:varchar(5)"`
	Semester      string    `json:"semester" gorm:"not null" validate:"required"`
	AcademicYear  string    `json:"academic_year" gorm:"not null" validate:"required"`
	ExamType      ExamType  `json:"exam_type" gorm:"not null;default:Final" validate:"required"`
	Remarks       string    `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
	Student       *User     `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Subject       *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

// Percentage returns marks as a percentage of the total. A non-positive
// total yields 0 rather than dividing by zero.
func (r *Result) Percentage() float64 {
	if r.TotalMarks <= 0 {
		return 0
	}
	return r.MarksObtained / r.TotalMarks * 100
}
