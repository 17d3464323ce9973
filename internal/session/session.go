package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prashant-tajane/qkart-frontend/internal/domain"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// Manager owns the current session and its persistence lifecycle: Init reads
// the store exactly once at startup, SignIn persists a fresh login, SignOut
// clears everything. All mutation happens on the UI event loop, so no locking.
type Manager struct {
	store   *Store
	logger  *slog.Logger
	current domain.Session
}

func NewManager(store *Store, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger.With("component", "session"),
	}
}

// Init loads the persisted session. Later token invalidation (e.g. expiry) is
// only detected when an API call fails; Init merely logs a heads-up when the
// persisted token is already past its exp claim.
func (m *Manager) Init() (domain.Session, error) {
	token, err := m.store.Get(keyToken)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	username, err := m.store.Get(keyUsername)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	m.current = domain.Session{Token: token, Username: username}
	if m.current.LoggedIn() {
		m.warnIfExpired(token)
	}
	return m.current, nil
}

// Current returns the in-memory session.
func (m *Manager) Current() domain.Session {
	return m.current
}

// SignIn persists the token and username and updates the in-memory session.
func (m *Manager) SignIn(token, username string) error {
	if err := m.store.Set(keyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := m.store.Set(keyUsername, username); err != nil {
		return fmt.Errorf("persist username: %w", err)
	}
	m.current = domain.Session{Token: token, Username: username}
	return nil
}

// SignOut clears the durable store entirely and resets the in-memory session.
func (m *Manager) SignOut() error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	m.current = domain.Session{}
	return nil
}

// warnIfExpired peeks at the JWT exp claim without verifying the signature.
// The server stays the authority on token validity; this only logs.
func (m *Manager) warnIfExpired(token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	if time.Now().After(exp.Time) {
		m.logger.Warn("persisted auth token is expired, API calls will be rejected until next login",
			"expired_at", exp.Time)
	}
}
