package dto

import "github.com/schoolerp/student-service/internal/app/models"

// MarksheetRequest is the wire shape for marksheet creation. TotalMarks,
// MaxTotalMarks and Percentage are pointers so the service can tell "absent"
// apart from an explicit zero when deriving percentage and grade.
type MarksheetRequest struct {
	StudentID     string      `json:"studentId" binding:"required"`
	ExamType      string      `json:"examType"`
	AcademicYear  string      `json:"academicYear"`
	ClassName     string      `json:"className"`
	Section       string      `json:"section"`
	Subjects      string      `json:"subjects"`
	TotalMarks    *int        `json:"totalMarks"`
	MaxTotalMarks *int        `json:"maxTotalMarks"`
	Percentage    *float64    `json:"percentage"`
	Grade         string      `json:"grade"`
	Rank          int         `json:"rank"`
	Result        string      `json:"result"`
	Status        string      `json:"status"`
	PublishDate   models.Date `json:"publishDate"`
}
