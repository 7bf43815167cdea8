package cli

import (
	"context"

	"github.com/jobease/jobease-cli/internal/client/forms"
	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/resume"
)

// NewNotifier walks through the create-notifier form. The user can save a
// draft at any completeness level; activating requires the full form to
// validate.
func (a *App) NewNotifier(ctx context.Context) error {
	return a.navigate(ctx, routeEditor, func(ctx context.Context) error {
		return a.editorView(ctx, nil)
	})
}

// EditNotifier loads an existing notifier (or draft) into the form.
func (a *App) EditNotifier(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		printlnFn("Usage: edit <id>")
		return nil
	}
	return a.navigate(ctx, routeEditor, func(ctx context.Context) error {
		n, err := a.notifiers.Get(ctx, id)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		return a.editorView(ctx, n)
	})
}

// promptDefault reads a value, keeping the current one when the user just
// presses Enter.
func (a *App) promptDefault(prompt, current string) (string, error) {
	if current != "" {
		prompt += " [" + current + "]"
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

func (a *App) editorView(ctx context.Context, existing *models.Notifier) error {
	var n models.Notifier
	if existing != nil {
		n = *existing
	}

	var err error
	if n.Name, err = a.promptDefault("Notifier name", n.Name); err != nil {
		return err
	}
	if n.Role, err = a.promptDefault("Role (e.g. Backend Engineer)", n.Role); err != nil {
		return err
	}
	if n.City, err = a.promptDefault("City", n.City); err != nil {
		return err
	}
	if n.SalaryExpectation, err = a.promptDefault("Salary expectation (LPA, e.g. 10-15)", n.SalaryExpectation); err != nil {
		return err
	}
	if n.Experience, err = a.promptDefault("Experience level", n.Experience); err != nil {
		return err
	}
	if n.Skills, err = a.promptDefault("Skills (comma separated)", n.Skills); err != nil {
		return err
	}
	if n.CompaniesPreference, err = a.promptDefault("Companies preference (optional)", n.CompaniesPreference); err != nil {
		return err
	}
	if n.NoticePeriod, err = a.promptDefault("Notice period (optional)", n.NoticePeriod); err != nil {
		return err
	}
	if n.AdditionalPreferences, err = a.promptDefault("Additional preferences (optional)", n.AdditionalPreferences); err != nil {
		return err
	}

	if confirm(a.reader, "Attach a resume?", a.out) {
		if err := a.attachResume(ctx, &n); err != nil {
			return err
		}
	}

	asDraft := confirm(a.reader, "Save as draft? (No activates the notifier)", a.out)
	if !asDraft {
		errs := forms.Validate(forms.Notifier{
			Name:              n.Name,
			Role:              n.Role,
			City:              n.City,
			SalaryExpectation: n.SalaryExpectation,
			Experience:        n.Experience,
			Skills:            n.Skills,
		})
		if len(errs) > 0 {
			printFieldErrors(errs)
			printlnFn("Saving as draft instead.")
			asDraft = true
		}
	}
	n.IsDraft = asDraft
	n.IsActive = !asDraft

	var saved *models.Notifier
	if n.ID == 0 {
		saved, err = a.notifiers.Create(ctx, n)
	} else {
		saved, err = a.notifiers.Update(ctx, n.ID, n)
	}
	if err != nil {
		printlnFn(err.Error())
		return nil
	}

	if saved.IsDraft {
		printlnFn("Draft saved.")
	} else {
		printlnFn("Notifier saved and activated.")
		if saved.ResumeLatex != "" && confirm(a.reader, "Compile resume to PDF now?", a.out) {
			result, err := a.notifiers.CompileResume(ctx, saved.ID)
			if err != nil {
				printlnFn(err.Error())
			} else if result.PdfURL != "" {
				printlnFn("Compiled: " + result.PdfURL)
			} else {
				printlnFn("Compile status: " + result.Status)
			}
		}
	}
	return nil
}

// attachResume fills n.ResumeLatex either from the extraction stub (file
// path input) or from pasted LaTeX.
func (a *App) attachResume(ctx context.Context, n *models.Notifier) error {
	if confirm(a.reader, "Generate LaTeX from a resume file?", a.out) {
		path, err := getSimpleText(a.reader, "Path to resume file", a.out)
		if err != nil {
			return err
		}
		data, err := resume.Extract(ctx, path)
		if err != nil {
			printlnFn(err.Error())
			return nil
		}
		n.ResumeLatex = resume.GenerateLaTeX(data)
		printlnFn("LaTeX generated from resume.")
		return nil
	}

	latex, err := GetMultiline(a.reader, "Paste LaTeX resume", a.out)
	if err != nil {
		return err
	}
	if latex != "" {
		n.ResumeLatex = latex
	}
	return nil
}
