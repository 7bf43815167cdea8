// Package common defines shared constants and sentinel errors used across
// the JobEase client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound = errors.New("not found")

	// Auth/session errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoSession    = errors.New("no active session")

	// API client errors.
	ErrBackendDisabled = errors.New("backend API is disabled in this build")
	ErrUnavailable     = errors.New("unable to connect to server")
)
