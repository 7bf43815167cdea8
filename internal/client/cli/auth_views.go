package cli

import (
	"context"

	"github.com/jobease/jobease-cli/internal/client/forms"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printFieldErrors renders validation errors inline, one per field.
func printFieldErrors(errs map[string]string) {
	for _, msg := range errs {
		printlnFn("  ✗ " + msg)
	}
}

// Login prompts for credentials and runs the login transition. On success
// the user lands on the dashboard, or on onboarding when the account has no
// notifiers yet.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	if errs := forms.Validate(forms.Login{Email: email, Password: password}); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}

	if err := a.sess.Login(ctx, email, password); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Logged in.")
	if a.sess.Snapshot().NeedsOnboarding() {
		return a.Onboarding(ctx)
	}
	return a.Dashboard(ctx)
}

// GoogleLogin authenticates with a Google ID token obtained out-of-band
// (the browser flow prints one for CLI use).
func (a *App) GoogleLogin(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in.")
		return nil
	}

	idToken, err := getSimpleText(a.reader, "Paste your Google ID token", a.out)
	if err != nil {
		return err
	}
	if idToken == "" {
		printlnFn("No token provided.")
		return nil
	}

	if err := a.sess.GoogleLogin(ctx, idToken); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Logged in with Google.")
	if a.sess.Snapshot().NeedsOnboarding() {
		return a.Onboarding(ctx)
	}
	return a.Dashboard(ctx)
}

// Signup creates an account. A brand-new user is sent straight to
// onboarding.
func (a *App) Signup(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Enter password (min 8 characters)")
	if err != nil {
		return err
	}

	if errs := forms.Validate(forms.Signup{FullName: fullName, Email: email, Password: password}); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}

	if err := a.sess.Signup(ctx, email, password, fullName); err != nil {
		printlnFn(err.Error())
		return nil
	}

	printlnFn("Account created.")
	return a.Onboarding(ctx)
}

// ForgotPassword requests a password-reset email.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your account email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("If an account exists for that address, a reset link has been sent.")
	return nil
}

// ResetPassword validates a reset token and sets a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste the reset token from your email", a.out)
	if err != nil {
		return err
	}

	if err := a.auth.ValidateResetToken(ctx, token); err != nil {
		printlnFn(err.Error())
		return nil
	}

	password, err := getPassword(a.out, "New password (min 8 characters)")
	if err != nil {
		return err
	}
	confirmPw, err := getPassword(a.out, "Confirm new password")
	if err != nil {
		return err
	}

	if errs := forms.Validate(forms.ResetPassword{Password: password, Confirm: confirmPw}); len(errs) > 0 {
		printFieldErrors(errs)
		return nil
	}

	if err := a.auth.ResetPassword(ctx, token, password); err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn("Password updated. You can log in now.")
	return nil
}

// Logout asks for confirmation, then clears the session. The departure is
// noted through telemetry on a best-effort basis.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if !confirm(a.reader, "Are you sure you want to logout?", a.out) {
		return nil
	}

	a.log.Info(ctx, "user logged out")
	if err := a.sess.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Logged out.")
	return nil
}
