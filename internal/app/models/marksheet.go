package models

// MarksheetStatus is the publication state of a marksheet.
type MarksheetStatus string

const (
	MarksheetStatusDraft     MarksheetStatus = "DRAFT"
	MarksheetStatusPublished MarksheetStatus = "PUBLISHED"
	MarksheetStatusArchived  MarksheetStatus = "ARCHIVED"
)

// ValidMarksheetStatus reports whether s names a known status.
func ValidMarksheetStatus(s MarksheetStatus) bool {
	switch s {
	case MarksheetStatusDraft, MarksheetStatusPublished, MarksheetStatusArchived:
		return true
	}
	return false
}

// Marksheet is a student's exam result record. Percentage and grade are
// derived at creation when the caller leaves them unset.
type Marksheet struct {
	ID            int64           `json:"id"`
	StudentID     string          `json:"studentId"`
	ExamType      string          `json:"examType,omitempty"`
	AcademicYear  string          `json:"academicYear,omitempty"`
	ClassName     string          `json:"className,omitempty"`
	Section       string          `json:"section,omitempty"`
	Subjects      string          `json:"subjects,omitempty"`
	TotalMarks    int             `json:"totalMarks"`
	MaxTotalMarks int             `json:"maxTotalMarks"`
	Percentage    float64         `json:"percentage"`
	Grade         string          `json:"grade,omitempty"`
	Rank          int             `json:"rank,omitempty"`
	Result        string          `json:"result,omitempty"`
	Status        MarksheetStatus `json:"status"`
	PublishDate   Date            `json:"publishDate,omitempty"`
	CreatedAt     Timestamp       `json:"createdAt"`
	UpdatedAt     Timestamp       `json:"updatedAt"`
}
