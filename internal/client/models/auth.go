package models

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleLoginRequest is the payload for POST /auth/google.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// AuthResponse is returned by the signup, login and Google auth endpoints.
type AuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// User builds the locally cached user from an auth response. The onboarding
// flag is derived separately and defaults to false here.
func (r *AuthResponse) User() *User {
	return &User{ID: r.UserID, Email: r.Email, FullName: r.FullName}
}

// ForgotPasswordRequest is the payload for POST /auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the payload for POST /auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}
