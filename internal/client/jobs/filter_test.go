package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jobease/jobease-cli/internal/client/models"
)

func ptrF(v float64) *float64     { return &v }
func ptrT(t time.Time) *time.Time { return &t }

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sampleJobs() []models.Notification {
	return []models.Notification{
		{
			ID: 1, CompanyName: "Google", Role: "Backend Engineer", Location: "Bangalore",
			Salary: "2500000", JobType: "Full-Time", Batch: "2024", Experience: "2-4 years",
			RelevanceScore: ptrF(0.9), CreatedAt: testNow.AddDate(0, 0, -1),
			Deadline: ptrT(testNow.AddDate(0, 0, 5)),
		},
		{
			ID: 2, CompanyName: "Microsoft", Role: "SDE Intern", Location: "Hyderabad",
			Salary: "50000", JobType: "Internship", Batch: "2025", Experience: "0 years",
			RelevanceScore: ptrF(0.6), CreatedAt: testNow.AddDate(0, 0, -2),
		},
		{
			ID: 3, CompanyName: "Zomato", Role: "Frontend Engineer", Location: "Gurgaon",
			Salary: "1200000-1800000", JobType: "Full-Time",
			Applied: true, AppliedAt: ptrT(testNow.AddDate(0, 0, -1)),
			CreatedAt: testNow.AddDate(0, 0, -3),
		},
		{
			// Past deadline, not applied: hidden from the not-applied tab.
			ID: 4, CompanyName: "Paytm", Role: "Backend Engineer", Location: "Noida",
			JobType: "Full-Time", CreatedAt: testNow.AddDate(0, 0, -10),
			Deadline: ptrT(testNow.AddDate(0, 0, -2)),
		},
		{
			// No relevance score.
			ID: 5, CompanyName: "Google", Role: "SRE", Location: "Bangalore",
			JobType: "Full-Time", CreatedAt: testNow.AddDate(0, 0, -1),
		},
	}
}

func ids(list []models.Notification) []int64 {
	out := make([]int64, 0, len(list))
	for i := range list {
		out = append(out, list[i].ID)
	}
	return out
}

func TestApply_TabPartition(t *testing.T) {
	all := sampleJobs()

	notApplied := Apply(all, TabNotApplied, Filter{}, testNow)
	assert.Equal(t, []int64{1, 2, 5}, ids(notApplied), "expired job 4 is hidden, applied job 3 is on the other tab")

	applied := Apply(all, TabApplied, Filter{}, testNow)
	assert.Equal(t, []int64{3}, ids(applied))
}

func TestApply_ExpiredStaysVisibleOnAppliedTab(t *testing.T) {
	all := sampleJobs()
	all[3].Applied = true

	applied := Apply(all, TabApplied, Filter{}, testNow)
	assert.Contains(t, ids(applied), int64(4), "deadline does not hide an already-applied job")
}

func TestApply_JobTypeExactMatch(t *testing.T) {
	all := sampleJobs()

	got := Apply(all, TabNotApplied, Filter{JobType: "Internship"}, testNow)
	assert.Equal(t, []int64{2}, ids(got))

	// Case-insensitive but exact: "intern" must not match "Internship".
	got = Apply(all, TabNotApplied, Filter{JobType: "intern"}, testNow)
	assert.Empty(t, got)

	got = Apply(all, TabNotApplied, Filter{JobType: "internship"}, testNow)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApply_SubstringFieldsFoldCase(t *testing.T) {
	all := sampleJobs()

	got := Apply(all, TabNotApplied, Filter{Company: "goo"}, testNow)
	assert.Equal(t, []int64{1, 5}, ids(got))

	got = Apply(all, TabNotApplied, Filter{Role: "ENGINEER", Location: "bangalore"}, testNow)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_MinRelevanceRequiresScore(t *testing.T) {
	all := sampleJobs()

	got := Apply(all, TabNotApplied, Filter{MinRelevance: ptrF(0.5)}, testNow)
	assert.Equal(t, []int64{1, 2}, ids(got), "job 5 has no score and never passes a relevance floor")

	got = Apply(all, TabNotApplied, Filter{MinRelevance: ptrF(0.8)}, testNow)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_DateMatchesCalendarDay(t *testing.T) {
	all := sampleJobs()

	day := testNow.AddDate(0, 0, -2)
	// Different wall-clock time, same day.
	day = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, time.UTC)
	got := Apply(all, TabNotApplied, Filter{Date: &day}, testNow)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApply_DeadlineFilterExcludesNilDeadlines(t *testing.T) {
	all := sampleJobs()

	d := testNow.AddDate(0, 0, 5)
	got := Apply(all, TabNotApplied, Filter{Deadline: &d}, testNow)
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_Idempotent(t *testing.T) {
	all := sampleJobs()
	f := Filter{Company: "google", MinRelevance: ptrF(0.5)}

	once := Apply(all, TabNotApplied, f, testNow)
	twice := Apply(once, TabNotApplied, f, testNow)
	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_CriteriaOrderIrrelevant(t *testing.T) {
	// Filters AND together, so filtering by A then B equals B then A.
	all := sampleJobs()
	a := Filter{Company: "google"}
	b := Filter{Location: "bangalore"}

	ab := Apply(Apply(all, TabNotApplied, a, testNow), TabNotApplied, b, testNow)
	ba := Apply(Apply(all, TabNotApplied, b, testNow), TabNotApplied, a, testNow)
	assert.Equal(t, ids(ab), ids(ba))
}

func TestCounts(t *testing.T) {
	notApplied, applied := Counts(sampleJobs(), testNow)
	assert.Equal(t, 3, notApplied, "expired job 4 is not counted")
	assert.Equal(t, 1, applied)
}

func TestExpired_NilDeadlineNeverExpires(t *testing.T) {
	job := models.Notification{ID: 1}
	assert.False(t, expired(&job, testNow))
}

func TestExpired_SameDayIsNotExpired(t *testing.T) {
	deadline := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	job := models.Notification{Deadline: &deadline}
	assert.False(t, expired(&job, testNow), "a deadline today is still open")
}
