package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jobease/jobease-cli/internal/client/api"
	"github.com/jobease/jobease-cli/internal/client/models"
)

// AuthService wraps the /auth endpoints.
type AuthService struct {
	client HTTPClient
}

func NewAuthService(client HTTPClient) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Signup(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.Post(ctx, "/auth/signup", models.SignupRequest{Email: email, Password: password, FullName: fullName}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates with email and password. A 401 is always surfaced as
// "Invalid email or password"; a 400 with per-field errors is flattened into
// one sentence.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.Post(ctx, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case 401:
				return nil, errors.New("Invalid email or password")
			case 400:
				if len(apiErr.Fields) > 0 {
					return nil, errors.New(apiErr.Message)
				}
				if apiErr.RawMessage != "" {
					return nil, errors.New(apiErr.RawMessage)
				}
				return nil, errors.New("Validation failed")
			}
		}
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := s.client.Post(ctx, "/auth/google", models.GoogleLoginRequest{IDToken: idToken}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword requests a reset email. Backend 500s carry either a rate
// limit notice (passed through verbatim), a user-not-found message
// (re-labelled), or something internal (collapsed to a generic message).
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	err := s.client.Post(ctx, "/auth/forgot-password", models.ForgotPasswordRequest{Email: email}, nil)
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == 500 {
		lower := strings.ToLower(apiErr.RawMessage)
		switch {
		case strings.Contains(lower, "too many"),
			strings.Contains(lower, "rate limit"),
			strings.Contains(lower, "try again in"):
			return errors.New(apiErr.RawMessage)
		case strings.Contains(lower, "user not found"),
			strings.Contains(lower, "not found with email"):
			return errors.New("No account found with this email address. Please check your email or sign up.")
		default:
			return errors.New("Unable to process your request. Please try again later.")
		}
	}
	return err
}

func (s *AuthService) ValidateResetToken(ctx context.Context, token string) error {
	return s.client.Get(ctx, fmt.Sprintf("/auth/validate-reset-token?token=%s", url.QueryEscape(token)), nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.client.Post(ctx, "/auth/reset-password", models.ResetPasswordRequest{Token: token, NewPassword: newPassword}, nil)
}
