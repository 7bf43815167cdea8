package services

import (
	"context"
	"fmt"

	"github.com/jobease/jobease-cli/internal/client/models"
)

// UserInfoService wraps the /user-info endpoints holding education records.
type UserInfoService struct {
	client HTTPClient
}

func NewUserInfoService(client HTTPClient) *UserInfoService {
	return &UserInfoService{client: client}
}

func (s *UserInfoService) Create(ctx context.Context, e models.Education) (*models.Education, error) {
	var out models.Education
	e.ID = 0
	if err := s.client.Post(ctx, "/user-info", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserInfoService) List(ctx context.Context) ([]models.Education, error) {
	var out []models.Education
	if err := s.client.Get(ctx, "/user-info", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *UserInfoService) Get(ctx context.Context, id int64) (*models.Education, error) {
	var out models.Education
	if err := s.client.Get(ctx, fmt.Sprintf("/user-info/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserInfoService) Update(ctx context.Context, id int64, e models.Education) (*models.Education, error) {
	var out models.Education
	if err := s.client.Put(ctx, fmt.Sprintf("/user-info/%d", id), e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *UserInfoService) Delete(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/user-info/%d", id), nil)
}
