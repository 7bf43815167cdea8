package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-cli/internal/client/models"
)

func TestSummarize(t *testing.T) {
	s := Summarize(sampleJobs(), testNow)

	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 1, s.Applied)
	assert.Equal(t, 3, s.Pending, "expired job 4 is neither applied nor pending")
	assert.Equal(t, 4, s.ThisWeek)
}

func TestOverTime(t *testing.T) {
	points := OverTime(sampleJobs(), 7, testNow)
	require.Len(t, points, 7)

	// Oldest first; the last point is today.
	assert.Equal(t, testNow.AddDate(0, 0, -6).Format("Jan 2"), points[0].Date)
	assert.Equal(t, testNow.Format("Jan 2"), points[6].Date)

	var received, applied int
	for _, p := range points {
		received += p.Received
		applied += p.Applied
	}
	assert.Equal(t, 4, received, "job 4 arrived before the window")
	assert.Equal(t, 1, applied)

	// Jobs 1 and 5 both arrived yesterday.
	yesterday := testNow.AddDate(0, 0, -1).Format("Jan 2")
	for _, p := range points {
		if p.Date == yesterday {
			assert.Equal(t, 2, p.Received)
			assert.Equal(t, 1, p.Applied)
		}
	}
}

func TestTopSkills(t *testing.T) {
	all := []models.Notification{
		{JobDescription: "Looking for Java and Spring experience, SQL a plus"},
		{JobDescription: "Java backend role with AWS and Docker"},
		{JobDescription: "React/TypeScript frontend"},
		{JobDescription: "No tech keywords here"},
	}

	skills := TopSkills(all, 3)
	require.NotEmpty(t, skills)
	assert.Equal(t, "java", skills[0].Name)
	assert.Equal(t, 2, skills[0].Count)
	assert.LessOrEqual(t, len(skills), 3)

	for i := 1; i < len(skills); i++ {
		assert.GreaterOrEqual(t, skills[i-1].Count, skills[i].Count)
	}
}

func TestTopSkills_Empty(t *testing.T) {
	assert.Empty(t, TopSkills(nil, 5))
}

func TestNotifierPerformance(t *testing.T) {
	notifiers := []models.Notifier{
		{ID: 10, Name: "Backend Bangalore"},
		{ID: 20, Name: "Intern Search"},
	}
	all := []models.Notification{
		{NotifierID: 10, Applied: true, RelevanceScore: ptrF(0.8)},
		{NotifierID: 10, RelevanceScore: ptrF(0.6)},
		{NotifierID: 10},
		{NotifierID: 20},
	}

	perf := NotifierPerformance(notifiers, all)
	require.Len(t, perf, 2)

	// Sorted by jobs received.
	assert.Equal(t, "Backend Bangalore", perf[0].Name)
	assert.Equal(t, 3, perf[0].JobsReceived)
	assert.Equal(t, 1, perf[0].Applied)
	assert.Equal(t, 33, perf[0].ApplyRate)
	assert.Equal(t, 70, perf[0].AvgRelevance, "jobs without a score stay out of the average")

	assert.Equal(t, "Intern Search", perf[1].Name)
	assert.Equal(t, 0, perf[1].ApplyRate)
	assert.Equal(t, 0, perf[1].AvgRelevance)
}

func TestDeadlineEvents(t *testing.T) {
	all := []models.Notification{
		{ID: 1, CompanyName: "Google", Role: "SRE", Deadline: ptrT(testNow.AddDate(0, 0, 10))},
		{ID: 2, CompanyName: "Zomato", Deadline: ptrT(testNow.AddDate(0, 0, 1))},
		{ID: 3, CompanyName: "Paytm", Role: "Backend", Deadline: ptrT(testNow.AddDate(0, 0, -1))},
		{ID: 4, CompanyName: "NoDeadline Corp"},
		{ID: 5, CompanyName: "Swiggy", Role: "iOS", Deadline: ptrT(testNow.AddDate(0, 0, 3))},
	}

	events := DeadlineEvents(all, testNow)
	require.Len(t, events, 4, "jobs without a deadline are excluded")

	// Soonest first.
	assert.Equal(t, int64(3), events[0].JobID)
	assert.Equal(t, UrgencyExpired, events[0].Urgency)

	assert.Equal(t, int64(2), events[1].JobID)
	assert.Equal(t, UrgencyUrgent, events[1].Urgency)
	assert.Equal(t, "Zomato - Job", events[1].Title, "missing role falls back to a generic label")

	assert.Equal(t, int64(5), events[2].JobID)
	assert.Equal(t, UrgencySoon, events[2].Urgency)

	assert.Equal(t, int64(1), events[3].JobID)
	assert.Equal(t, UrgencySafe, events[3].Urgency)
	assert.Equal(t, "Google - SRE", events[3].Title)
}

func TestUrgencyString(t *testing.T) {
	assert.Equal(t, "safe", UrgencySafe.String())
	assert.Equal(t, "soon", UrgencySoon.String())
	assert.Equal(t, "urgent", UrgencyUrgent.String())
	assert.Equal(t, "expired", UrgencyExpired.String())
}

func TestOverTime_AppliedAtFallsBackToReceived(t *testing.T) {
	received := testNow.AddDate(0, 0, -2)
	all := []models.Notification{
		{Applied: true, CreatedAt: received},
	}

	points := OverTime(all, 7, testNow)
	var applied int
	var appliedDay string
	for _, p := range points {
		if p.Applied > 0 {
			applied += p.Applied
			appliedDay = p.Date
		}
	}
	assert.Equal(t, 1, applied)
	assert.Equal(t, received.Format("Jan 2"), appliedDay)
}
