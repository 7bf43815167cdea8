package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-cli/internal/client/models"
)

func TestTelemetrySend_EnrichesWithUser(t *testing.T) {
	fc := newFakeClient()
	s := NewTelemetryService(fc, "jobease-cli", "test", func() *models.User {
		return &models.User{ID: 5, Email: "a@b.c"}
	})

	s.Send(context.Background(), "error", "something broke", map[string]any{"view": "jobs"})

	require.Equal(t, []string{"POST /logs"}, fc.calls)
	rec, ok := fc.bodies["POST /logs"].(logRecord)
	require.True(t, ok)
	assert.Equal(t, "error", rec.Level)
	assert.Equal(t, "something broke", rec.Message)
	assert.Equal(t, "jobease-cli", rec.App)
	assert.Equal(t, "test", rec.Environment)
	assert.Equal(t, int64(5), rec.Meta["userId"])
	assert.Equal(t, "a@b.c", rec.Meta["userEmail"])
	assert.Equal(t, "jobs", rec.Meta["view"])
	assert.NotEmpty(t, rec.Timestamp)
}

func TestTelemetrySend_NoUser(t *testing.T) {
	fc := newFakeClient()
	s := NewTelemetryService(fc, "jobease-cli", "test", func() *models.User { return nil })

	s.Send(context.Background(), "info", "hello", nil)

	rec := fc.bodies["POST /logs"].(logRecord)
	assert.NotContains(t, rec.Meta, "userId")
}

func TestTelemetrySend_SwallowsErrors(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /logs"] = errors.New("backend down")
	s := NewTelemetryService(fc, "jobease-cli", "test", nil)

	assert.NotPanics(t, func() {
		s.Send(context.Background(), "warn", "m", nil)
	})
}
