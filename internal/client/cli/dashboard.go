package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/storage"
)

// Dashboard lists the user's notifiers and drafts and offers quick actions
// on them. A first visit shows the welcome banner once.
func (a *App) Dashboard(ctx context.Context) error {
	return a.navigate(ctx, routeDashboard, a.dashboardView)
}

func (a *App) dashboardView(ctx context.Context) error {
	if _, seen, _ := a.store.Get(ctx, storage.KeyWelcomeBannerSeen); !seen {
		printlnFn("Welcome to JobEase! Create notifiers to get matching jobs delivered to you.")
		_ = a.store.Set(ctx, storage.KeyWelcomeBannerSeen, "1")
	}

	all, err := a.notifiers.List(ctx)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	query := ""
	for {
		notifiers, drafts := models.SplitNotifiers(filterByName(all, query))
		a.renderNotifierSection(fmt.Sprintf("Notifiers (%d)", len(notifiers)), notifiers)
		a.renderNotifierSection(fmt.Sprintf("Drafts (%d)", len(drafts)), drafts)

		line, err := getSimpleText(a.reader, "dashboard: search <text> | toggle <id> | delete <id> | back", a.out)
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
		case "search":
			query = strings.Join(parts[1:], " ")
		case "toggle":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: toggle <id>")
				continue
			}
			updated, err := a.notifiers.ToggleActive(ctx, id)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			all = replaceNotifier(all, *updated)
		case "delete":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: delete <id>")
				continue
			}
			if !confirm(a.reader, "Delete this notifier? This cannot be undone.", a.out) {
				continue
			}
			if err := a.notifiers.Delete(ctx, id); err != nil {
				printlnFn(err.Error())
				continue
			}
			all = removeNotifier(all, id)
		default:
			printlnFn("Unknown action:", parts[0])
		}
	}
}

func (a *App) renderNotifierSection(title string, list []models.Notifier) {
	printlnFn(title)
	if len(list) == 0 {
		printlnFn("  (none)")
		return
	}
	for _, n := range list {
		status := "paused"
		if n.IsActive {
			status = "active"
		}
		if n.IsDraft {
			status = "draft"
		}
		salary := models.ParseExpectation(n.SalaryExpectation).FormatBand()
		printlnFn(fmt.Sprintf("  [%d] %s: %s, %s, %s (%s)", n.ID, n.Name, n.Role, n.City, salary, status))
	}
}

func filterByName(all []models.Notifier, query string) []models.Notifier {
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	out := make([]models.Notifier, 0, len(all))
	for _, n := range all {
		if strings.Contains(strings.ToLower(n.Name), q) {
			out = append(out, n)
		}
	}
	return out
}

func replaceNotifier(all []models.Notifier, updated models.Notifier) []models.Notifier {
	for i := range all {
		if all[i].ID == updated.ID {
			all[i] = updated
		}
	}
	return all
}

func removeNotifier(all []models.Notifier, id int64) []models.Notifier {
	out := all[:0]
	for _, n := range all {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
