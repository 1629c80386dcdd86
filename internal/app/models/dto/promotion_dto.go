package dto

// PromoteStudentsRequest is the body of the batch promotion operation.
// Status names the target STATUS lookup value when MarkAsAlumni is false.
type PromoteStudentsRequest struct {
	FromClass        int     `json:"fromClass" binding:"required,min=1"`
	FromSection      int     `json:"fromSection" binding:"required,min=1"`
	ToClass          int     `json:"toClass" binding:"required,min=1"`
	ToSection        int     `json:"toSection" binding:"required,min=1"`
	AcademicYear     string  `json:"academicYear" binding:"required"`
	MarkAsAlumni     bool    `json:"markAsAlumni"`
	SendNotification bool    `json:"sendNotification"`
	Status           string  `json:"status"`
	StudentIDs       []int64 `json:"studentIds" binding:"required,min=1"`
}
