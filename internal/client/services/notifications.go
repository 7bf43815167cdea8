package services

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// NotificationService wraps the /notifications endpoints.
type NotificationService struct {
	client HTTPClient
}

func NewNotificationService(client HTTPClient) *NotificationService {
	return &NotificationService{client: client}
}

// ListForNotifier returns the job matches for one notifier.
func (s *NotificationService) ListForNotifier(ctx context.Context, notifierID int64) ([]models.Notification, error) {
	var out []models.Notification
	if err := s.client.Get(ctx, fmt.Sprintf("/notifications/notifier/%d", notifierID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkApplied flags a job as applied. The backend treats this as one-way;
// there is no un-apply.
func (s *NotificationService) MarkApplied(ctx context.Context, id int64) (*models.Notification, error) {
	var out models.Notification
	if err := s.client.Put(ctx, fmt.Sprintf("/notifications/%d/applied", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/notifications/%d", id), nil)
}

// UpdateResume replaces the job-specific LaTeX resume.
func (s *NotificationService) UpdateResume(ctx context.Context, id int64, resumeLatex string) (*models.Notification, error) {
	var out models.Notification
	if err := s.client.Patch(ctx, fmt.Sprintf("/notifications/%d/resume", id), resumePatch{ResumeLatex: resumeLatex}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
