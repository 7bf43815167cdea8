package api

import (
	"sort"
	"strings"

	"github.com/jobease/jobease-cli/internal/common"
)

// Error is a failed backend response, normalized into a single
// human-readable message. RawMessage keeps the backend's original text for
// call sites that re-label (the login flow, password reset).
type Error struct {
	Status     int
	Message    string
	RawMessage string
	Fields     map[string]string
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets callers match rejection classes with errors.Is:
// common.ErrUnauthorized for 401/403, common.ErrNotFound for 404.
func (e *Error) Unwrap() error {
	switch e.Status {
	case 401, 403:
		return common.ErrUnauthorized
	case 404:
		return common.ErrNotFound
	}
	return nil
}

// errorPayload is the backend's error body shape: either a message or a map
// of per-field validation errors.
type errorPayload struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

const genericErrorMessage = "Something went wrong. Please try again."

// makeUserFriendly maps known backend phrasings onto messages fit for
// display. Unknown messages pass through unless they look like leaked
// internals (stack traces, exception names), which collapse to the generic
// fallback.
func makeUserFriendly(message string) string {
	if message == "" {
		return genericErrorMessage
	}

	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "authentication failed"):
		return "Invalid email or password."
	case strings.Contains(lower, "registration failed"):
		return "Unable to create account. Please try again."
	case strings.Contains(lower, "user not found"), strings.Contains(lower, "no account found"):
		return "No account found with this email address. Please check your email or sign up."
	case strings.Contains(lower, "already exists"):
		return "An account with this email already exists."
	case strings.Contains(lower, "invalid token"),
		strings.Contains(lower, "token expired"),
		strings.Contains(lower, "token has expired"):
		return "This password reset link has expired or is invalid. Please request a new one."
	case strings.Contains(lower, "reset link") && strings.Contains(lower, "expired"):
		return "This password reset link has expired. Please request a new one."
	}

	if strings.Contains(message, "Exception") || strings.Contains(message, "Error:") || strings.Contains(message, "failed:") {
		return genericErrorMessage
	}

	return message
}

// joinFieldErrors flattens a per-field error map into one sentence, in a
// stable order.
func joinFieldErrors(fields map[string]string) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return strings.Join(parts, ". ")
}

// newError builds the normalized Error for a failed response.
func newError(status int, payload errorPayload) *Error {
	e := &Error{Status: status, RawMessage: payload.Message, Fields: payload.Errors}

	switch {
	case payload.Message != "":
		e.Message = makeUserFriendly(payload.Message)
	case len(payload.Errors) > 0:
		if joined := joinFieldErrors(payload.Errors); joined != "" {
			e.Message = joined
		} else {
			e.Message = "Please check your input and try again."
		}
	default:
		e.Message = genericErrorMessage
	}
	return e
}
