package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jobease/jobease-cli/internal/client/jobs"
	"github.com/jobease/jobease-cli/internal/client/models"
)

// Jobs shows the matched postings for one notifier, partitioned into
// not-applied and applied tabs with the full filter set.
func (a *App) Jobs(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		printlnFn("Usage: jobs <notifier-id>")
		return nil
	}
	return a.navigate(ctx, routeJobs, func(ctx context.Context) error {
		return a.jobsView(ctx, id)
	})
}

func (a *App) jobsView(ctx context.Context, notifierID int64) error {
	list, err := a.notifications.ListForNotifier(ctx, notifierID)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	tab := jobs.TabNotApplied
	var filter jobs.Filter

	for {
		now := time.Now()
		notAppliedCount, appliedCount := jobs.Counts(list, now)
		printlnFn(fmt.Sprintf("Tabs: not-applied (%d) | applied (%d) | showing %s", notAppliedCount, appliedCount, tab))

		visible := jobs.Apply(list, tab, filter, now)
		if len(visible) == 0 {
			printlnFn("  (no jobs match)")
		}
		for i := range visible {
			a.renderJob(&visible[i])
		}

		line, err := getSimpleText(a.reader, "jobs: tab <applied|not-applied> | filter <field> <value> | clear | apply <id> | delete <id> | resume <id> | back", a.out)
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "back", "b":
			return nil
		case "tab":
			if len(parts) < 2 {
				printlnFn("Usage: tab <applied|not-applied>")
				continue
			}
			switch parts[1] {
			case "applied":
				tab = jobs.TabApplied
			case "not-applied", "pending":
				tab = jobs.TabNotApplied
			default:
				printlnFn("Unknown tab:", parts[1])
			}
		case "clear":
			filter = jobs.Filter{}
		case "filter":
			if len(parts) < 3 {
				printlnFn("Usage: filter <field> <value>")
				continue
			}
			a.setFilterField(&filter, parts[1], strings.Join(parts[2:], " "))
		case "apply":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: apply <id>")
				continue
			}
			// One-way: once marked applied there is no way back.
			if !confirm(a.reader, "Once marked as applied, you won't be able to change this status again. Confirm?", a.out) {
				continue
			}
			updated, err := a.notifications.MarkApplied(ctx, id)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			list = replaceNotification(list, *updated)
		case "delete":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: delete <id>")
				continue
			}
			if !confirm(a.reader, "Delete this job notification?", a.out) {
				continue
			}
			if err := a.notifications.Delete(ctx, id); err != nil {
				printlnFn(err.Error())
				continue
			}
			list = removeNotification(list, id)
		case "resume":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: resume <id>")
				continue
			}
			latex, err := GetMultiline(a.reader, "Paste job-specific LaTeX resume", a.out)
			if err != nil {
				return err
			}
			updated, err := a.notifications.UpdateResume(ctx, id, latex)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			list = replaceNotification(list, *updated)
			printlnFn("Resume updated for this job.")
		default:
			printlnFn("Unknown action:", parts[0])
		}
	}
}

func (a *App) renderJob(job *models.Notification) {
	salary := models.ParseRupees(job.Salary).FormatINR()
	line := fmt.Sprintf("  [%d] %s: %s, %s, %s", job.ID, job.CompanyName, job.Role, job.Location, salary)
	if job.JobType != "" {
		line += ", " + job.JobType
	}
	if job.RelevanceScore != nil {
		line += fmt.Sprintf(" (relevance %.0f%%)", *job.RelevanceScore*100)
	}
	if job.Deadline != nil {
		line += " | deadline " + job.Deadline.Format("2006-01-02")
	}
	printlnFn(line)
}

// setFilterField maps a field name to the corresponding filter slot. Date
// fields expect YYYY-MM-DD; relevance expects a 0..1 float.
func (a *App) setFilterField(f *jobs.Filter, field, value string) {
	switch field {
	case "company":
		f.Company = value
	case "location":
		f.Location = value
	case "role":
		f.Role = value
	case "salary":
		f.Salary = value
	case "type":
		f.JobType = value
	case "batch":
		f.Batch = value
	case "experience":
		f.Experience = value
	case "relevance":
		min, err := strconv.ParseFloat(value, 64)
		if err != nil {
			printlnFn("Relevance must be a number between 0 and 1")
			return
		}
		f.MinRelevance = &min
	case "date":
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			printlnFn("Date must be YYYY-MM-DD")
			return
		}
		f.Date = &t
	case "deadline":
		t, err := time.Parse("2006-01-02", value)
		if err != nil {
			printlnFn("Deadline must be YYYY-MM-DD")
			return
		}
		f.Deadline = &t
	default:
		printlnFn("Unknown filter field:", field)
	}
}

func replaceNotification(list []models.Notification, updated models.Notification) []models.Notification {
	for i := range list {
		if list[i].ID == updated.ID {
			list[i] = updated
		}
	}
	return list
}

func removeNotification(list []models.Notification, id int64) []models.Notification {
	out := list[:0]
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}
