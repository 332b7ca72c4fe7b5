package models

// Role defines the closed set of account roles.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// ExamType distinguishes multiple results for the same
// student/subject/semester combination.
type ExamType string

const (
	ExamFinal      ExamType = "Final"
	ExamMidTerm    ExamType = "Mid-term"
	ExamQuiz       ExamType = "Quiz"
	ExamAssignment ExamType = "Assignment"
	ExamProject    ExamType = "Project"
)

// ExamTypes lists every valid exam type.
var ExamTypes = []ExamType{ExamFinal, ExamMidTerm, ExamQuiz, ExamAssignment, ExamProject}

// Valid reports whether the exam type is one of the known values.
func (e ExamType) Valid() bool {
	for _, t := range ExamTypes {
		if e == t {
			return true
		}
	}
	return false
}
