// Package guard decides whether a view may render for the current session
// state. It is a pure function of the session snapshot and a per-route
// onboarding requirement; the onboarding and profile routes opt out of that
// requirement to avoid a redirect loop and to allow profile editing before
// onboarding completes.
package guard

import "github.com/jobease/jobease-cli/internal/client/session"

// Decision is the guard's verdict for one route.
type Decision int

const (
	// Render lets the route's view run.
	Render Decision = iota
	// RedirectLogin sends the user to the login view.
	RedirectLogin
	// RedirectOnboarding sends the user to the onboarding view.
	RedirectOnboarding
	// ShowLoading renders a placeholder while the session is still
	// initializing.
	ShowLoading
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectLogin:
		return "redirect-login"
	case RedirectOnboarding:
		return "redirect-onboarding"
	case ShowLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Route is the per-route guard configuration.
type Route struct {
	// RequireOnboarding redirects authenticated-but-not-onboarded users to
	// the onboarding view.
	RequireOnboarding bool
}

// Resolve maps a session snapshot and route configuration to a Decision.
func Resolve(snap session.Snapshot, route Route) Decision {
	switch snap.State {
	case session.StateUninitialized, session.StateLoading:
		return ShowLoading
	}

	if !snap.IsAuthenticated() {
		return RedirectLogin
	}

	if route.RequireOnboarding && snap.NeedsOnboarding() {
		return RedirectOnboarding
	}

	return Render
}
