package services

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// NotifierService wraps the /notifiers endpoints. Drafts and active
// notifiers share the same resource; IsDraft is just a field.
type NotifierService struct {
	client HTTPClient
}

func NewNotifierService(client HTTPClient) *NotifierService {
	return &NotifierService{client: client}
}

func (s *NotifierService) List(ctx context.Context) ([]models.Notifier, error) {
	var out []models.Notifier
	if err := s.client.Get(ctx, "/notifiers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotifierService) Get(ctx context.Context, id int64) (*models.Notifier, error) {
	var out models.Notifier
	if err := s.client.Get(ctx, fmt.Sprintf("/notifiers/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NotifierService) Create(ctx context.Context, n models.Notifier) (*models.Notifier, error) {
	var out models.Notifier
	n.ID = 0
	if err := s.client.Post(ctx, "/notifiers", n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NotifierService) Update(ctx context.Context, id int64, n models.Notifier) (*models.Notifier, error) {
	var out models.Notifier
	if err := s.client.Put(ctx, fmt.Sprintf("/notifiers/%d", id), n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *NotifierService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/notifiers/%d", id), nil)
}

type resumePatch struct {
	ResumeLatex string `json:"resumeLatex"`
}

// UpdateResume replaces the LaTeX resume attached to a notifier.
func (s *NotifierService) UpdateResume(ctx context.Context, id int64, resumeLatex string) (*models.Notifier, error) {
	var out models.Notifier
	if err := s.client.Patch(ctx, fmt.Sprintf("/notifiers/%d/resume", id), resumePatch{ResumeLatex: resumeLatex}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResumeCompileResult is the backend's answer to a compile request. The
// LaTeX-to-PDF compilation itself is an external service.
type ResumeCompileResult struct {
	Status string `json:"status"`
	PdfURL string `json:"pdfUrl,omitempty"`
}

func (s *NotifierService) CompileResume(ctx context.Context, id int64) (*ResumeCompileResult, error) {
	var out ResumeCompileResult
	if err := s.client.Post(ctx, fmt.Sprintf("/notifiers/%d/resume/compile", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleActive flips the active flag server-side and returns the updated
// notifier.
func (s *NotifierService) ToggleActive(ctx context.Context, id int64) (*models.Notifier, error) {
	var out models.Notifier
	if err := s.client.Patch(ctx, fmt.Sprintf("/notifiers/%d/toggle-active", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
