package services

import (
	"context"
	"time"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// TelemetryService ships client log records to POST /logs. Delivery is
// best-effort: every failure is swallowed so telemetry can never affect the
// user experience.
type TelemetryService struct {
	client      HTTPClient
	app         string
	environment string
	userSource  func() *models.User
}

// NewTelemetryService builds the sink. userSource may be nil; when set it
// enriches records with the current user's id and email.
func NewTelemetryService(client HTTPClient, app, environment string, userSource func() *models.User) *TelemetryService {
	return &TelemetryService{client: client, app: app, environment: environment, userSource: userSource}
}

type logRecord struct {
	Level       string         `json:"level"`
	Message     string         `json:"message"`
	Meta        map[string]any `json:"meta,omitempty"`
	Timestamp   string         `json:"timestamp"`
	App         string         `json:"app"`
	Environment string         `json:"environment"`
}

// Send delivers one record. Errors are intentionally discarded.
func (s *TelemetryService) Send(ctx context.Context, level, message string, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	if s.userSource != nil {
		if u := s.userSource(); u != nil {
			meta["userId"] = u.ID
			meta["userEmail"] = u.Email
		}
	}

	rec := logRecord{
		Level:       level,
		Message:     message,
		Meta:        meta,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		App:         s.app,
		Environment: s.environment,
	}
	_ = s.client.Post(ctx, "/logs", rec, nil)
}
