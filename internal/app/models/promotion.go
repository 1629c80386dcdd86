package models

// StudentPromotion is one audit row of the promotion workflow: the class and
// section a student held before the move, the requested target, and the
// status code resolved for the batch. Rows are append-only.
type StudentPromotion struct {
	ID            int64     `json:"id"`
	StudentID     int64     `json:"studentId"`
	FromClass     int       `json:"fromClass"`
	FromSection   int       `json:"fromSection"`
	ToClass       int       `json:"toClass"`
	ToSection     int       `json:"toSection"`
	AcademicYear  string    `json:"academicYear"`
	PromotionDate Timestamp `json:"promotionDate"`
	Status        int64     `json:"status"`
}
