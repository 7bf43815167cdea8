package models

import "time"

// Notification is a job posting matched to a notifier. The applied/not
// applied partition shown in the UI is a pure filter over Applied and
// Deadline; nothing about it is persisted client-side.
type Notification struct {
	ID             int64      `json:"id"`
	NotifierID     int64      `json:"notifierId"`
	CompanyName    string     `json:"companyName"`
	Role           string     `json:"role"`
	Location       string     `json:"location"`
	Salary         string     `json:"salary"`
	JobType        string     `json:"jobType"`
	Batch          string     `json:"batch"`
	Experience     string     `json:"experience"`
	JobDescription string     `json:"jobDescription"`
	ApplyLink      string     `json:"applyLink,omitempty"`
	RelevanceScore *float64   `json:"relevanceScore,omitempty"`
	Applied        bool       `json:"applied"`
	Deadline       *time.Time `json:"deadline,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	AppliedAt      *time.Time `json:"appliedAt,omitempty"`
	ResumeLatex    string     `json:"resumeLatex,omitempty"`
}

// ReceivedAt returns the best-known arrival time of the posting: the match
// timestamp when present, otherwise the record creation time.
func (n *Notification) ReceivedAt() time.Time {
	if n.Timestamp != nil {
		return *n.Timestamp
	}
	return n.CreatedAt
}
