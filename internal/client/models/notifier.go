package models

// Notifier is a saved job-search configuration. Drafts (IsDraft=true) and
// active notifiers are partitions of the same collection, distinguished only
// by the flag; there is no separate lifecycle beyond create/update/delete.
type Notifier struct {
	ID                    int64  `json:"id,omitempty"`
	Name                  string `json:"name"`
	Role                  string `json:"role"`
	City                  string `json:"city"`
	SalaryExpectation     string `json:"salaryExpectation"`
	Experience            string `json:"experience"`
	Skills                string `json:"skills"`
	CompaniesPreference   string `json:"companiesPreference,omitempty"`
	NoticePeriod          string `json:"noticePeriod,omitempty"`
	ResumeLatex           string `json:"resumeLatex,omitempty"`
	AdditionalPreferences string `json:"additionalPreferences,omitempty"`
	IsActive              bool   `json:"isActive"`
	IsDraft               bool   `json:"isDraft"`
}

// SplitNotifiers partitions a collection into active notifiers and drafts,
// preserving order.
func SplitNotifiers(all []Notifier) (notifiers, drafts []Notifier) {
	for _, n := range all {
		if n.IsDraft {
			drafts = append(drafts, n)
		} else {
			notifiers = append(notifiers, n)
		}
	}
	return notifiers, drafts
}
