package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobease/jobease-cli/internal/client/api"
	"github.com/jobease/jobease-cli/internal/client/models"
)

// fakeClient records calls and plays back canned responses keyed by
// "METHOD path".
type fakeClient struct {
	calls     []string
	bodies    map[string]any
	responses map[string]any
	errs      map[string]error
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		bodies:    map[string]any{},
		responses: map[string]any{},
		errs:      map[string]error{},
	}
}

func (f *fakeClient) handle(method, path string, body, out any) error {
	key := method + " " + path
	f.calls = append(f.calls, key)
	f.bodies[key] = body
	if err := f.errs[key]; err != nil {
		return err
	}
	if resp, ok := f.responses[key]; ok && out != nil {
		b, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, out)
	}
	return nil
}

func (f *fakeClient) Get(ctx context.Context, path string, out any) error {
	return f.handle("GET", path, nil, out)
}

func (f *fakeClient) Post(ctx context.Context, path string, body, out any) error {
	return f.handle("POST", path, body, out)
}

func (f *fakeClient) Put(ctx context.Context, path string, body, out any) error {
	return f.handle("PUT", path, body, out)
}

func (f *fakeClient) Patch(ctx context.Context, path string, body, out any) error {
	return f.handle("PATCH", path, body, out)
}

func (f *fakeClient) Delete(ctx context.Context, path string, out any) error {
	return f.handle("DELETE", path, nil, out)
}

func TestAuthLogin_Success(t *testing.T) {
	fc := newFakeClient()
	fc.responses["POST /auth/login"] = models.AuthResponse{Token: "tok", UserID: 1, Email: "a@b.c"}

	s := NewAuthService(fc)
	resp, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)

	body, ok := fc.bodies["POST /auth/login"].(models.LoginRequest)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", body.Email)
}

func TestAuthLogin_401RelabelsMessage(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /auth/login"] = &api.Error{Status: 401, Message: "Unauthorized"}

	s := NewAuthService(fc)
	_, err := s.Login(context.Background(), "a@b.c", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestAuthLogin_400FieldErrors(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /auth/login"] = &api.Error{
		Status:  400,
		Message: "Email is invalid",
		Fields:  map[string]string{"email": "Email is invalid"},
	}

	s := NewAuthService(fc)
	_, err := s.Login(context.Background(), "bad", "pw")
	require.Error(t, err)
	assert.Equal(t, "Email is invalid", err.Error())
}

func TestAuthLogin_OtherErrorsPassThrough(t *testing.T) {
	fc := newFakeClient()
	wantErr := errors.New("connection refused")
	fc.errs["POST /auth/login"] = wantErr

	s := NewAuthService(fc)
	_, err := s.Login(context.Background(), "a", "b")
	assert.ErrorIs(t, err, wantErr)
}

func TestForgotPassword_RateLimitPassesThrough(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /auth/forgot-password"] = &api.Error{
		Status:     500,
		RawMessage: "Too many requests. Please try again in 10 minutes",
	}

	s := NewAuthService(fc)
	err := s.ForgotPassword(context.Background(), "a@b.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Too many requests")
}

func TestForgotPassword_UserNotFoundRelabeled(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /auth/forgot-password"] = &api.Error{
		Status:     500,
		RawMessage: "User not found with email: a@b.c",
	}

	s := NewAuthService(fc)
	err := s.ForgotPassword(context.Background(), "a@b.c")
	require.Error(t, err)
	assert.Equal(t, "No account found with this email address. Please check your email or sign up.", err.Error())
}

func TestForgotPassword_InternalCollapsesToGeneric(t *testing.T) {
	fc := newFakeClient()
	fc.errs["POST /auth/forgot-password"] = &api.Error{
		Status:     500,
		RawMessage: "MessagingException: could not connect to SMTP host",
	}

	s := NewAuthService(fc)
	err := s.ForgotPassword(context.Background(), "a@b.c")
	require.Error(t, err)
	assert.Equal(t, "Unable to process your request. Please try again later.", err.Error())
}

func TestValidateResetToken_EscapesToken(t *testing.T) {
	fc := newFakeClient()
	s := NewAuthService(fc)

	require.NoError(t, s.ValidateResetToken(context.Background(), "a b&c"))
	require.Len(t, fc.calls, 1)
	assert.Equal(t, "GET /auth/validate-reset-token?token=a+b%26c", fc.calls[0])
}

func TestGoogleLogin(t *testing.T) {
	fc := newFakeClient()
	fc.responses["POST /auth/google"] = models.AuthResponse{Token: "g-tok", UserID: 2}

	s := NewAuthService(fc)
	resp, err := s.GoogleLogin(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "g-tok", resp.Token)

	body, ok := fc.bodies["POST /auth/google"].(models.GoogleLoginRequest)
	require.True(t, ok)
	assert.Equal(t, "id-token", body.IDToken)
}

func TestSignup(t *testing.T) {
	fc := newFakeClient()
	fc.responses["POST /auth/signup"] = models.AuthResponse{Token: "t", UserID: 9}

	s := NewAuthService(fc)
	resp, err := s.Signup(context.Background(), "n@e.w", "pw12345678", "New")
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.UserID)
}
