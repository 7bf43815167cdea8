// Package jobs implements the client-side partitioning and filtering of job
// notifications, plus the aggregations behind the insights view. Everything
// here is a pure recomputation over the full in-memory list; list sizes are
// in the tens to low hundreds, so no indexing or caching is kept.
package jobs

import (
	"strings"
	"time"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// Tab selects the applied/not-applied partition.
type Tab string

const (
	TabNotApplied Tab = "not-applied"
	TabApplied    Tab = "applied"
)

// Filter is the set of criteria combined with logical AND. Zero-valued
// fields are inactive. String criteria are case-insensitive substring
// matches except JobType, which matches exactly.
type Filter struct {
	Company      string
	Location     string
	Role         string
	Salary       string
	JobType      string // Full-Time | Internship | Part-Time | Contract
	Batch        string
	Experience   string
	MinRelevance *float64   // 0..1
	Date         *time.Time // calendar-day match on the received time
	Deadline     *time.Time // calendar-day match on the deadline
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// expired reports whether a job's deadline has passed as of now, at day
// granularity. A job with no deadline is never expired.
func expired(job *models.Notification, now time.Time) bool {
	if job.Deadline == nil {
		return false
	}
	return truncateDay(*job.Deadline).Before(truncateDay(now))
}

// Matches reports whether one job satisfies the tab and every active
// criterion.
func Matches(job *models.Notification, tab Tab, f Filter, now time.Time) bool {
	if tab == TabNotApplied && job.Applied {
		return false
	}
	if tab == TabApplied && !job.Applied {
		return false
	}

	if f.Company != "" && !containsFold(job.CompanyName, f.Company) {
		return false
	}
	if f.Location != "" && !containsFold(job.Location, f.Location) {
		return false
	}
	if f.Role != "" && !containsFold(job.Role, f.Role) {
		return false
	}
	if f.Salary != "" && !containsFold(job.Salary, f.Salary) {
		return false
	}
	if f.JobType != "" && !strings.EqualFold(job.JobType, f.JobType) {
		return false
	}
	if f.Batch != "" && !containsFold(job.Batch, f.Batch) {
		return false
	}
	if f.Experience != "" && !containsFold(job.Experience, f.Experience) {
		return false
	}
	if f.MinRelevance != nil {
		// A job with no relevance score never satisfies a relevance floor.
		if job.RelevanceScore == nil || *job.RelevanceScore < *f.MinRelevance {
			return false
		}
	}
	if f.Date != nil && !sameDay(job.ReceivedAt(), *f.Date) {
		return false
	}

	// The not-applied tab additionally hides past-deadline jobs.
	if tab == TabNotApplied && expired(job, now) {
		return false
	}

	// An explicit deadline filter excludes jobs without a deadline.
	if f.Deadline != nil {
		if job.Deadline == nil {
			return false
		}
		if !sameDay(*job.Deadline, *f.Deadline) {
			return false
		}
	}

	return true
}

// Apply returns the subset of jobs satisfying the tab and filter.
func Apply(all []models.Notification, tab Tab, f Filter, now time.Time) []models.Notification {
	out := make([]models.Notification, 0, len(all))
	for i := range all {
		if Matches(&all[i], tab, f, now) {
			out = append(out, all[i])
		}
	}
	return out
}

// Counts computes the tab headers: not-applied excludes expired jobs,
// applied counts every applied job regardless of deadline.
func Counts(all []models.Notification, now time.Time) (notApplied, applied int) {
	for i := range all {
		if all[i].Applied {
			applied++
		} else if !expired(&all[i], now) {
			notApplied++
		}
	}
	return notApplied, applied
}
