package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jobease/jobease-cli/internal/client/jobs"
	"github.com/jobease/jobease-cli/internal/client/models"
)

// Insights renders aggregate statistics across every notifier's jobs.
func (a *App) Insights(ctx context.Context) error {
	return a.navigate(ctx, routeInsights, a.insightsView)
}

func (a *App) insightsView(ctx context.Context) error {
	notifiers, err := a.notifiers.List(ctx)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	var all []models.Notification
	for _, n := range notifiers {
		list, err := a.notifications.ListForNotifier(ctx, n.ID)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		all = append(all, list...)
	}

	days := 14
	if line, err := getSimpleText(a.reader, "Days to chart (7/14/30, default 14)", a.out); err == nil {
		switch strings.TrimSpace(line) {
		case "7":
			days = 7
		case "30":
			days = 30
		}
	}

	now := time.Now()
	summary := jobs.Summarize(all, now)
	printlnFn("")
	printlnFn(fmt.Sprintf("Total jobs: %d | Applied: %d | Pending: %d | This week: %d",
		summary.Total, summary.Applied, summary.Pending, summary.ThisWeek))

	printlnFn("")
	printlnFn(fmt.Sprintf("Jobs over time (last %d days):", days))
	for _, p := range jobs.OverTime(all, days, now) {
		printlnFn(fmt.Sprintf("  %-7s %s%s", p.Date, strings.Repeat("#", p.Received), strings.Repeat("+", p.Applied)))
	}

	printlnFn("")
	printlnFn("Top skills in demand:")
	skills := jobs.TopSkills(all, 8)
	if len(skills) == 0 {
		printlnFn("  (no skills detected yet)")
	}
	for _, s := range skills {
		printlnFn(fmt.Sprintf("  %-12s %s %d", s.Name, strings.Repeat("#", s.Count), s.Count))
	}

	printlnFn("")
	printlnFn("Notifier performance:")
	for _, p := range jobs.NotifierPerformance(notifiers, all) {
		printlnFn(fmt.Sprintf("  %-20s received %-4d applied %-4d rate %3d%% relevance %3d%%",
			p.Name, p.JobsReceived, p.Applied, p.ApplyRate, p.AvgRelevance))
	}

	printlnFn("")
	printlnFn("Upcoming deadlines:")
	events := jobs.DeadlineEvents(all, now)
	if len(events) == 0 {
		printlnFn("  (no deadlines)")
	}
	for _, e := range events {
		printlnFn(fmt.Sprintf("  %s  %-40s [%s]", e.Date.Format("2006-01-02"), e.Title, e.Urgency))
	}
	return nil
}
