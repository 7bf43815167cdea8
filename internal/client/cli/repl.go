package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	Signup(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Jobs(ctx context.Context, args []string) error
	NewNotifier(ctx context.Context) error
	EditNotifier(ctx context.Context, args []string) error
	Insights(ctx context.Context) error
	Settings(ctx context.Context) error
	Profile(ctx context.Context) error
	Onboarding(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL is the application's router: it reads a command line, parses the
// first token as the route, and dispatches to methods on 'a'. Unknown
// commands are reported back. The loop exits on scanner EOF or "exit"/
// "quit".
//
// Errors returned by views are ignored here; views print their own errors.
// This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("jobease %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (d)ashboard, jobs <id>, new, edit <id>, insights, settings, profile, onboarding, logout, exit")
			} else {
				printlnFn("Available commands: login, google, signup, forgot, reset, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.GoogleLogin(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "jobs":
			_ = a.Jobs(ctx, args)

		case "new":
			_ = a.NewNotifier(ctx)

		case "edit":
			_ = a.EditNotifier(ctx, args)

		case "insights":
			_ = a.Insights(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "onboarding":
			_ = a.Onboarding(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
