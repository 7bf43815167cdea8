package services

import "context"

// AccountService wraps user account management.
type AccountService struct {
	client HTTPClient
}

func NewAccountService(client HTTPClient) *AccountService {
	return &AccountService{client: client}
}

// DeleteAccount permanently removes the authenticated user's account.
func (s *AccountService) DeleteAccount(ctx context.Context) error {
	return s.client.Delete(ctx, "/users/me", nil)
}
