package cli

import (
	"context"

	"github.com/jobease/jobease-cli/internal/client/forms"
	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/session"
)

// Onboarding is the first-run flow: at least one education record, then the
// first notifier. Completing it activates the notifier and flips the
// onboarding flag, which unlocks the rest of the app.
func (a *App) Onboarding(ctx context.Context) error {
	return a.navigate(ctx, routeOnboarding, a.onboardingView)
}

func (a *App) onboardingView(ctx context.Context) error {
	printlnFn("Welcome! Let's set up your profile. First, your education.")

	added := 0
	for {
		e, ok, err := a.promptEducation(models.Education{})
		if err != nil {
			return err
		}
		if ok {
			if _, err := a.userInfo.Create(ctx, e); err != nil {
				printlnFn(err.Error())
			} else {
				added++
			}
		}
		if added > 0 && !confirm(a.reader, "Add another education record?", a.out) {
			break
		}
		if added == 0 {
			printlnFn("At least one education record is required to continue.")
		}
	}

	printlnFn("Now create your first job notifier.")
	n, err := a.promptOnboardingNotifier(ctx)
	if err != nil {
		return err
	}

	saved, err := a.notifiers.Create(ctx, *n)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("Notifier", saved.Name, "is live. You'll start receiving matching jobs.")

	completed := true
	if _, err := a.sess.UpdateProfile(ctx, session.ProfileUpdate{OnboardingCompleted: &completed}); err != nil {
		printlnFn(err.Error())
		return nil
	}
	return a.Dashboard(ctx)
}

// promptOnboardingNotifier loops until the form validates. Unlike the
// editor there is no draft escape hatch: the first notifier goes live.
func (a *App) promptOnboardingNotifier(ctx context.Context) (*models.Notifier, error) {
	var n models.Notifier
	for {
		var err error
		if n.Name, err = a.promptDefault("Notifier name", n.Name); err != nil {
			return nil, err
		}
		if n.Role, err = a.promptDefault("Role (e.g. Backend Engineer)", n.Role); err != nil {
			return nil, err
		}
		if n.City, err = a.promptDefault("City", n.City); err != nil {
			return nil, err
		}
		if n.SalaryExpectation, err = a.promptDefault("Salary expectation (LPA, e.g. 10-15)", n.SalaryExpectation); err != nil {
			return nil, err
		}
		if n.Experience, err = a.promptDefault("Experience level", n.Experience); err != nil {
			return nil, err
		}
		if n.Skills, err = a.promptDefault("Skills (comma separated)", n.Skills); err != nil {
			return nil, err
		}

		errs := forms.Validate(forms.Notifier{
			Name:              n.Name,
			Role:              n.Role,
			City:              n.City,
			SalaryExpectation: n.SalaryExpectation,
			Experience:        n.Experience,
			Skills:            n.Skills,
		})
		if len(errs) == 0 {
			break
		}
		printFieldErrors(errs)
	}

	if confirm(a.reader, "Attach a resume now?", a.out) {
		if err := a.attachResume(ctx, &n); err != nil {
			return nil, err
		}
	}

	n.IsActive = true
	n.IsDraft = false
	return &n, nil
}
