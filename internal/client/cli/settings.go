package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/jobease/jobease-cli/internal/client/session"
	"github.com/jobease/jobease-cli/internal/client/storage"
)

// Settings covers theme preference, session details and account deletion.
func (a *App) Settings(ctx context.Context) error {
	return a.navigate(ctx, routeSettings, a.settingsView)
}

func (a *App) settingsView(ctx context.Context) error {
	for {
		theme, ok, err := a.store.Get(ctx, storage.KeyTheme)
		if err != nil {
			return err
		}
		if !ok {
			theme = "light"
		}
		printlnFn("Theme:", theme)

		if token, ok, err := a.store.Token(ctx); err == nil && ok {
			if exp, found := session.TokenExpiry(token); found {
				printlnFn("Session expires:", exp.Format(time.RFC1123), fmt.Sprintf("(%s from now)", time.Until(exp).Round(time.Minute)))
			}
		}

		line, err := getSimpleText(a.reader, "settings: theme | delete-account | back", a.out)
		if err != nil {
			return err
		}
		switch line {
		case "back", "b", "":
			return nil
		case "theme":
			next := "dark"
			if theme == "dark" {
				next = "light"
			}
			if err := a.store.Set(ctx, storage.KeyTheme, next); err != nil {
				printlnFn(err.Error())
				continue
			}
			printlnFn("Theme switched to", next)
		case "delete-account":
			if !confirm(a.reader, "This permanently deletes your account and all notifiers. Are you sure?", a.out) {
				continue
			}
			if !confirm(a.reader, "Really delete? This cannot be undone.", a.out) {
				continue
			}
			if err := a.account.DeleteAccount(ctx); err != nil {
				printlnFn(err.Error())
				continue
			}
			a.log.Info(ctx, "account deleted")
			if err := a.sess.Logout(ctx); err != nil {
				printlnFn(err.Error())
			}
			printlnFn("Your account has been deleted.")
			return nil
		default:
			printlnFn("Unknown action:", line)
		}
	}
}
