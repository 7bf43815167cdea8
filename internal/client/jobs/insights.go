package jobs

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// Summary is the headline block of the insights view.
type Summary struct {
	Total    int
	Applied  int
	Pending  int // not applied and not past deadline
	ThisWeek int // received within the last 7 days
}

func Summarize(all []models.Notification, now time.Time) Summary {
	var s Summary
	weekAgo := now.AddDate(0, 0, -7)
	for i := range all {
		job := &all[i]
		s.Total++
		if job.Applied {
			s.Applied++
		} else if !expired(job, now) {
			s.Pending++
		}
		if job.ReceivedAt().After(weekAgo) {
			s.ThisWeek++
		}
	}
	return s
}

// TimePoint is one day's bucket in the jobs-over-time series.
type TimePoint struct {
	Date     string // "Jan 2"
	Received int
	Applied  int
}

// OverTime buckets jobs per day for the trailing days window, oldest first.
func OverTime(all []models.Notification, days int, now time.Time) []TimePoint {
	points := make([]TimePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		p := TimePoint{Date: day.Format("Jan 2")}
		for j := range all {
			job := &all[j]
			if sameDay(job.ReceivedAt(), day) {
				p.Received++
			}
			if job.Applied {
				appliedAt := job.ReceivedAt()
				if job.AppliedAt != nil {
					appliedAt = *job.AppliedAt
				}
				if sameDay(appliedAt, day) {
					p.Applied++
				}
			}
		}
		points = append(points, p)
	}
	return points
}

// commonSkills is the fixed vocabulary scanned for in job descriptions.
var commonSkills = []string{
	"java", "python", "javascript", "react", "node", "aws", "docker",
	"kubernetes", "spring", "sql", "mongodb", "typescript", "angular", "vue",
}

// SkillCount is one bar of the top-skills chart.
type SkillCount struct {
	Name  string
	Count int
}

// TopSkills counts occurrences of well-known skills across job descriptions
// and returns the top limit entries, most frequent first.
func TopSkills(all []models.Notification, limit int) []SkillCount {
	counts := map[string]int{}
	for i := range all {
		desc := strings.ToLower(all[i].JobDescription)
		for _, skill := range commonSkills {
			if strings.Contains(desc, skill) {
				counts[skill]++
			}
		}
	}

	out := make([]SkillCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, SkillCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Performance aggregates per-notifier match quality.
type Performance struct {
	Name         string
	JobsReceived int
	Applied      int
	ApplyRate    int // percent
	AvgRelevance int // percent
}

// NotifierPerformance computes per-notifier stats, most active first.
func NotifierPerformance(notifiers []models.Notifier, all []models.Notification) []Performance {
	out := make([]Performance, 0, len(notifiers))
	for _, n := range notifiers {
		p := Performance{Name: n.Name}
		var relevanceSum float64
		var scored int
		for i := range all {
			job := &all[i]
			if job.NotifierID != n.ID {
				continue
			}
			p.JobsReceived++
			if job.Applied {
				p.Applied++
			}
			if job.RelevanceScore != nil {
				relevanceSum += *job.RelevanceScore
				scored++
			}
		}
		if p.JobsReceived > 0 {
			p.ApplyRate = int(float64(p.Applied)/float64(p.JobsReceived)*100 + 0.5)
		}
		// Unscored jobs say nothing about match quality, so they stay out
		// of the average.
		if scored > 0 {
			p.AvgRelevance = int(relevanceSum/float64(scored)*100 + 0.5)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobsReceived > out[j].JobsReceived })
	return out
}

// Urgency bands a deadline by how soon it falls.
type Urgency int

const (
	UrgencySafe    Urgency = iota // more than 3 days away
	UrgencySoon                   // within 3 days
	UrgencyUrgent                 // today or tomorrow
	UrgencyExpired                // already passed
)

func (u Urgency) String() string {
	switch u {
	case UrgencySafe:
		return "safe"
	case UrgencySoon:
		return "soon"
	case UrgencyUrgent:
		return "urgent"
	case UrgencyExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// DeadlineEvent is a calendar entry for one job's deadline.
type DeadlineEvent struct {
	JobID   int64
	Title   string
	Date    time.Time
	Urgency Urgency
}

// DeadlineEvents lists every job with a deadline as a calendar event,
// soonest first.
func DeadlineEvents(all []models.Notification, now time.Time) []DeadlineEvent {
	out := make([]DeadlineEvent, 0, len(all))
	for i := range all {
		job := &all[i]
		if job.Deadline == nil {
			continue
		}
		daysUntil := int(truncateDay(*job.Deadline).Sub(truncateDay(now)).Hours() / 24)

		urgency := UrgencySafe
		switch {
		case daysUntil < 0:
			urgency = UrgencyExpired
		case daysUntil <= 1:
			urgency = UrgencyUrgent
		case daysUntil <= 3:
			urgency = UrgencySoon
		}

		role := job.Role
		if role == "" {
			role = "Job"
		}
		out = append(out, DeadlineEvent{
			JobID:   job.ID,
			Title:   fmt.Sprintf("%s - %s", job.CompanyName, role),
			Date:    *job.Deadline,
			Urgency: urgency,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
