package cli

import (
	"context"

	"github.com/jobease/jobease-cli/internal/client/guard"
)

// Route table mirroring the page map: every protected view requires
// authentication; the onboarding and profile views additionally opt out of
// the onboarding-completion requirement so a fresh account can reach them.
var (
	routeDashboard  = guard.Route{RequireOnboarding: true}
	routeJobs       = guard.Route{RequireOnboarding: true}
	routeInsights   = guard.Route{RequireOnboarding: true}
	routeSettings   = guard.Route{RequireOnboarding: true}
	routeEditor     = guard.Route{RequireOnboarding: true}
	routeProfile    = guard.Route{RequireOnboarding: false}
	routeOnboarding = guard.Route{RequireOnboarding: false}
)

// navigate runs view if the guard allows it, otherwise renders the redirect
// target instead, exactly once (the redirect targets themselves never
// redirect further for onboarding status, so there is no loop).
func (a *App) navigate(ctx context.Context, route guard.Route, view func(ctx context.Context) error) error {
	switch guard.Resolve(a.sess.Snapshot(), route) {
	case guard.Render:
		return view(ctx)
	case guard.RedirectLogin:
		printlnFn("You need to log in first.")
		return a.Login(ctx)
	case guard.RedirectOnboarding:
		printlnFn("Finish onboarding to continue.")
		return a.Onboarding(ctx)
	default:
		printlnFn("Loading...")
		return nil
	}
}
