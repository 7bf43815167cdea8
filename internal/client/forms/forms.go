// Package forms validates user input before it is submitted to the backend.
// Validation errors are returned per field so views can render them inline
// next to the offending prompt.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Signup is the account creation form.
type Signup struct {
	FullName string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// Login is the credential form.
type Login struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Notifier is the create/edit notifier form. Drafts skip validation
// entirely; only a full save goes through here.
type Notifier struct {
	Name              string `validate:"required"`
	Role              string `validate:"required"`
	City              string `validate:"required"`
	SalaryExpectation string `validate:"required"`
	Experience        string `validate:"required"`
	Skills            string `validate:"required"`
}

// Education is one education record on the onboarding and profile views.
type Education struct {
	DegreeName   string `validate:"required"`
	CollegeType  string `validate:"required"`
	BatchPassout int    `validate:"required,gte=1950,lte=2100"`
	Major        string `validate:"required"`
}

// ResetPassword is the new-password form of the reset flow.
type ResetPassword struct {
	Password string `validate:"required,min=8"`
	Confirm  string `validate:"required,eqfield=Password"`
}

// Validate checks v and returns a field→message map, empty on success.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	field := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be a valid year", field)
	case "eqfield":
		return "Passwords do not match"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// humanize splits a CamelCase field name into words: "SalaryExpectation" →
// "Salary expectation".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
