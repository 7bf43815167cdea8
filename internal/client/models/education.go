package models

// Education is a user-info record collected during onboarding and editable
// from the profile page.
type Education struct {
	ID           int64  `json:"id,omitempty"`
	DegreeName   string `json:"degreeName"`
	CollegeType  string `json:"collegeType"`
	BatchPassout int    `json:"batchPassout"`
	Major        string `json:"major"`
}
