package models

// Well-known common_master lookup keys and values.
const (
	MasterKeyStatus = "STATUS"

	StatusAlumni   = "ALUMNI"
	StatusPromoted = "PROMOTED"
)

// CommonMaster is a generic key/value lookup row. Human-readable values
// (e.g. key "STATUS", data "ALUMNI") map to the numeric codes stored on
// students and promotion audit rows. Inactive rows are ignored by lookups.
type CommonMaster struct {
	ID     int64  `json:"id"`
	Key    string `json:"commonMasterKey"`
	Data   string `json:"data"`
	Active bool   `json:"status"`
}
