// Package session implements the auth/session state machine. It derives the
// authentication state and the onboarding-completion flag from the persisted
// session store plus a server-side notifier check, and funnels every
// mutation through named transitions: Initialize, Login, Signup,
// GoogleLogin, Logout, UpdateProfile.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jobease/jobease-cli/internal/client/models"
	"github.com/jobease/jobease-cli/internal/client/storage"
	"github.com/jobease/jobease-cli/internal/common"
	"github.com/jobease/jobease-cli/internal/logging"
)

// State is the machine's position:
//
//	uninitialized → loading → {onboarded, needs-onboarding, unauthenticated}
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateUnauthenticated
	StateNeedsOnboarding
	StateOnboarded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateNeedsOnboarding:
		return "authenticated-needs-onboarding"
	case StateOnboarded:
		return "authenticated-onboarded"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the machine for route guarding.
type Snapshot struct {
	State State
	User  *models.User
}

// IsAuthenticated reports whether a user is present.
func (s Snapshot) IsAuthenticated() bool {
	return s.State == StateOnboarded || s.State == StateNeedsOnboarding
}

// NeedsOnboarding is true iff a user is present and its onboarding flag is
// unset.
func (s Snapshot) NeedsOnboarding() bool {
	return s.State == StateNeedsOnboarding
}

// AuthAPI is the slice of the auth service the machine depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, email, password, fullName string) (*models.AuthResponse, error)
	GoogleLogin(ctx context.Context, idToken string) (*models.AuthResponse, error)
}

// NotifierLister supplies the server-side notifier list used to derive the
// onboarding flag: a non-empty list means onboarding is complete.
type NotifierLister interface {
	List(ctx context.Context) ([]models.Notifier, error)
}

// Manager holds the machine. All mutations go through its methods; the
// persisted session store is written only here.
type Manager struct {
	store     *storage.Store
	auth      AuthAPI
	notifiers NotifierLister
	log       logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
}

func NewManager(store *storage.Store, auth AuthAPI, notifiers NotifierLister, log logging.Logger) *Manager {
	return &Manager{store: store, auth: auth, notifiers: notifiers, log: log, state: StateUninitialized}
}

// Snapshot returns the current state and user.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{State: m.state, User: m.user}
}

// User returns the current user, or nil.
func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

func (m *Manager) setAuthenticated(u *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = u
	if u.OnboardingCompleted {
		m.state = StateOnboarded
	} else {
		m.state = StateNeedsOnboarding
	}
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	m.state = StateUnauthenticated
}

// Initialize derives the starting state from the persisted store. With a
// stored token and user, the onboarding flag is recomputed from the
// server-side notifier count. A rejected token destroys the session; any
// other failure keeps the previously cached flag, since a transient backend
// error must not strand the user in the loading state or log them out.
//
// A malformed stored user is treated as an absent session: both keys are
// cleared and the machine lands in the unauthenticated state.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	m.state = StateLoading
	m.mu.Unlock()

	token, hasToken, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	userJSON, hasUser, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return err
	}

	if !hasToken || !hasUser {
		// A lone token or lone user violates the session invariant; drop it.
		if hasToken || hasUser {
			if err := m.store.ClearSession(ctx); err != nil {
				return err
			}
		}
		m.setUnauthenticated()
		return nil
	}

	user, err := models.ParseUser(userJSON)
	if err != nil {
		m.log.Warn(ctx, "stored user is malformed, discarding session", "error", err.Error())
		if err := m.store.ClearSession(ctx); err != nil {
			return err
		}
		m.setUnauthenticated()
		return nil
	}

	if exp, ok := TokenExpiry(token); ok && exp.Before(time.Now()) {
		// The recompute call would be rejected anyway; keep the cached flag
		// and let the first real request trigger the forced logout.
		m.log.Warn(ctx, "stored token already expired", "expiredAt", exp)
		m.setAuthenticated(user)
		return nil
	}

	completed, err := m.recomputeOnboarding(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			// The backend rejected the stored token, so the session is
			// gone for real. The reject handler has already emptied the
			// store; the in-memory state must not outlive it.
			m.log.Warn(ctx, "stored token rejected, discarding session", "error", err.Error())
			if err := m.store.ClearSession(ctx); err != nil {
				return err
			}
			m.setUnauthenticated()
			return nil
		}
		m.log.Warn(ctx, "onboarding check failed, keeping cached flag", "error", err.Error())
		m.setAuthenticated(user)
		return nil
	}

	user.OnboardingCompleted = completed
	if err := m.persistUser(ctx, user); err != nil {
		return err
	}
	m.setAuthenticated(user)
	return nil
}

func (m *Manager) recomputeOnboarding(ctx context.Context) (bool, error) {
	notifiers, err := m.notifiers.List(ctx)
	if err != nil {
		return false, err
	}
	return len(notifiers) > 0, nil
}

// cachedOnboardingFlag returns the stored onboarding flag for userID, or
// false when no matching user is cached. Used as the fallback when the
// notifier check fails during login; keeping the policy identical to
// Initialize (previous cached value, defaulting to false).
func (m *Manager) cachedOnboardingFlag(ctx context.Context, userID int64) bool {
	userJSON, ok, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil || !ok {
		return false
	}
	cached, err := models.ParseUser(userJSON)
	if err != nil || cached.ID != userID {
		return false
	}
	return cached.OnboardingCompleted
}

// Login authenticates and establishes a session. On any failure the partial
// session is cleared so a token can never exist without a matching user.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}
	return m.establish(ctx, resp, true)
}

// GoogleLogin authenticates with a Google ID token.
func (m *Manager) GoogleLogin(ctx context.Context, idToken string) error {
	resp, err := m.auth.GoogleLogin(ctx, idToken)
	if err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}
	return m.establish(ctx, resp, true)
}

// Signup creates the account and establishes a session. A brand-new user has
// no notifiers yet, so the onboarding flag is unconditionally false.
func (m *Manager) Signup(ctx context.Context, email, password, fullName string) error {
	resp, err := m.auth.Signup(ctx, email, password, fullName)
	if err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}
	return m.establish(ctx, resp, false)
}

// establish persists the new session. The token is staged first so the
// onboarding recompute runs authenticated, then token and user are written
// together; any failure rolls the whole session back.
func (m *Manager) establish(ctx context.Context, resp *models.AuthResponse, recompute bool) error {
	fallback := m.cachedOnboardingFlag(ctx, resp.UserID)

	if err := m.store.Set(ctx, storage.KeyToken, resp.Token); err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}

	user := resp.User()
	if recompute {
		completed, err := m.recomputeOnboarding(ctx)
		if err != nil {
			if errors.Is(err, common.ErrUnauthorized) {
				// Freshly issued token rejected on the next call. Roll the
				// session back rather than keep a token the backend refuses.
				_ = m.store.ClearSession(ctx)
				m.setUnauthenticated()
				return err
			}
			m.log.Warn(ctx, "onboarding check failed, keeping cached flag", "error", err.Error())
			completed = fallback
		}
		user.OnboardingCompleted = completed
	}

	userJSON, err := user.Encode()
	if err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}
	if err := m.store.SetSession(ctx, resp.Token, userJSON); err != nil {
		_ = m.store.ClearSession(ctx)
		m.setUnauthenticated()
		return err
	}

	m.setAuthenticated(user)
	m.log.Info(ctx, "session established", "state", m.Snapshot().State.String())
	return nil
}

// Logout clears the persisted session. No server round-trip is required.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.ClearSession(ctx); err != nil {
		return err
	}
	m.setUnauthenticated()
	m.log.Info(ctx, "logged out")
	return nil
}

// HandleAuthReject is registered as the API client's rejection callback: the
// backend refused our credentials on a non-login request, so the session is
// gone.
func (m *Manager) HandleAuthReject(ctx context.Context) {
	_ = m.store.ClearSession(ctx)
	m.setUnauthenticated()
}

// ProfileUpdate carries the fields a profile edit may change. Nil means
// "leave unchanged".
type ProfileUpdate struct {
	FullName            *string
	ProfilePhoto        *string
	OnboardingCompleted *bool
}

// UpdateProfile shallow-merges the supplied fields into the current user and
// persists the result. Only the onboarding flag synchronizes with server
// truth elsewhere; the other fields are client-local.
func (m *Manager) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil, common.ErrNoSession
	}
	merged := *m.user
	m.mu.Unlock()

	if upd.FullName != nil {
		merged.FullName = *upd.FullName
	}
	if upd.ProfilePhoto != nil {
		merged.ProfilePhoto = *upd.ProfilePhoto
	}
	if upd.OnboardingCompleted != nil {
		merged.OnboardingCompleted = *upd.OnboardingCompleted
	}

	if err := m.persistUser(ctx, &merged); err != nil {
		return nil, err
	}
	m.setAuthenticated(&merged)
	return &merged, nil
}

func (m *Manager) persistUser(ctx context.Context, u *models.User) error {
	userJSON, err := u.Encode()
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.KeyUser, userJSON)
}
