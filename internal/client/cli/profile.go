package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jobease/jobease-cli/internal/client/forms"
	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/session"
)

// Profile shows the signed-in user and lets them edit their name, photo and
// education records.
func (a *App) Profile(ctx context.Context) error {
	return a.navigate(ctx, routeProfile, a.profileView)
}

func (a *App) profileView(ctx context.Context) error {
	for {
		u := a.sess.User()
		if u == nil {
			return nil
		}
		printlnFn("Name:", u.FullName)
		printlnFn("Email:", u.Email)
		if u.ProfilePhoto != "" {
			printlnFn("Photo:", u.ProfilePhoto)
		}

		education, err := a.userInfo.List(ctx)
		if err != nil {
			printlnFn(err.Error())
		} else {
			printlnFn("Education:")
			if len(education) == 0 {
				printlnFn("  (none)")
			}
			for _, e := range education {
				printlnFn(fmt.Sprintf("  [%d] %s in %s, %s, batch %d", e.ID, e.DegreeName, e.Major, e.CollegeType, e.BatchPassout))
			}
		}

		line, err := getSimpleText(a.reader, "profile: name | photo | add-education | edit-education <id> | delete-education <id> | back", a.out)
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
		case "name":
			name, err := getSimpleText(a.reader, "Full name", a.out)
			if err != nil {
				return err
			}
			if name == "" {
				continue
			}
			if _, err := a.sess.UpdateProfile(ctx, session.ProfileUpdate{FullName: &name}); err != nil {
				printlnFn(err.Error())
			}
		case "photo":
			photo, err := getSimpleText(a.reader, "Photo URL", a.out)
			if err != nil {
				return err
			}
			if _, err := a.sess.UpdateProfile(ctx, session.ProfileUpdate{ProfilePhoto: &photo}); err != nil {
				printlnFn(err.Error())
			}
		case "add-education":
			e, ok, err := a.promptEducation(models.Education{})
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if _, err := a.userInfo.Create(ctx, e); err != nil {
				printlnFn(err.Error())
			}
		case "edit-education":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: edit-education <id>")
				continue
			}
			current, err := a.userInfo.Get(ctx, id)
			if err != nil {
				printlnFn(err.Error())
				continue
			}
			e, ok, err := a.promptEducation(*current)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if _, err := a.userInfo.Update(ctx, id, e); err != nil {
				printlnFn(err.Error())
			}
		case "delete-education":
			id, ok := parseID(parts[1:])
			if !ok {
				printlnFn("Usage: delete-education <id>")
				continue
			}
			if !confirm(a.reader, "Delete this education record?", a.out) {
				continue
			}
			if err := a.userInfo.Delete(ctx, id); err != nil {
				printlnFn(err.Error())
			}
		default:
			printlnFn("Unknown action:", parts[0])
		}
	}
}

// promptEducation collects one education record, keeping current values on
// empty input. Returns ok=false when validation fails.
func (a *App) promptEducation(current models.Education) (models.Education, bool, error) {
	degree, err := a.promptDefault("Degree name", current.DegreeName)
	if err != nil {
		return current, false, err
	}
	collegeType, err := a.promptDefault("College type (IIT/NIT/IIIT/Private/Government)", current.CollegeType)
	if err != nil {
		return current, false, err
	}
	batchDefault := ""
	if current.BatchPassout != 0 {
		batchDefault = strconv.Itoa(current.BatchPassout)
	}
	batchText, err := a.promptDefault("Batch passout year", batchDefault)
	if err != nil {
		return current, false, err
	}
	batch, _ := strconv.Atoi(batchText)
	major, err := a.promptDefault("Major", current.Major)
	if err != nil {
		return current, false, err
	}

	e := models.Education{
		ID:           current.ID,
		DegreeName:   degree,
		CollegeType:  collegeType,
		BatchPassout: batch,
		Major:        major,
	}
	if errs := forms.Validate(forms.Education{
		DegreeName:   e.DegreeName,
		CollegeType:  e.CollegeType,
		BatchPassout: e.BatchPassout,
		Major:        e.Major,
	}); len(errs) > 0 {
		printFieldErrors(errs)
		return e, false, nil
	}
	return e, true, nil
}
