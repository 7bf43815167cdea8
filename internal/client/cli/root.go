package cli

import (
	"bufio"
	"context"
	"os"
)

// getStatus builds the prompt suffix: the logged-in user's email plus the
// machine state.
func (a *App) getStatus() string {
	snap := a.sess.Snapshot()
	s := ""
	if snap.User != nil {
		s = snap.User.Email + " "
	}
	s += snap.State.String()
	return "(" + s + ")"
}

// Root greets the user and enters the command loop. A fresh unauthenticated
// session drops straight into the login view, matching the web app's
// redirect from / to the guarded dashboard.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to JobEase CLI (type 'help' for commands)")

	if a.isLoggedIn() {
		_ = a.Dashboard(ctx)
	} else {
		_ = a.Login(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
