package account

import (
	"context"
	"fmt"

	"github.com/abookhq/abook/internal/common"
	"github.com/abookhq/abook/internal/logging"
)

// Binder attaches a user's working data to the host application on login and
// releases it on logout.
type Binder interface {
	// Bind loads the account's per-user data and installs a fresh working
	// model on the host. An error means nothing was installed.
	Bind(ctx context.Context, a Account) error

	// Unbind releases the model currently installed on the host.
	Unbind(ctx context.Context)
}

// Session tracks who, if anyone, is currently logged in, and orchestrates
// registration, login and logout against the registry and the binder.
//
// On login the binder completes before the session flips to logged-in; if
// binding fails the session stays logged out.
type Session struct {
	registry *Registry
	binder   Binder
	log      logging.Logger

	current *Account
}

func NewSession(registry *Registry, binder Binder, log logging.Logger) *Session {
	return &Session{registry: registry, binder: binder, log: log}
}

// Register hashes the password, builds the account and adds it to the
// registry, which also validates the username. A taken username surfaces as
// common.ErrDuplicateUsername. Registering does not log the new user in.
func (s *Session) Register(ctx context.Context, username, password, userID string) (Account, error) {
	a := Account{Username: username, Hash: HashPassword(password), UserID: userID}
	if err := s.registry.Add(ctx, a); err != nil {
		return Account{}, err
	}
	s.log.Info(ctx, "registered account", "username", username, "user_id", userID)
	return a, nil
}

// Login authenticates the user and binds their data. While someone is logged
// in, further logins are rejected with common.ErrAlreadyLoggedIn.
func (s *Session) Login(ctx context.Context, username, password string) (Account, error) {
	if s.current != nil {
		return Account{}, common.ErrAlreadyLoggedIn
	}

	a, err := s.registry.Authenticate(ctx, username, HashPassword(password))
	if err != nil {
		return Account{}, err
	}

	if err := s.binder.Bind(ctx, a); err != nil {
		return Account{}, fmt.Errorf("bind user data: %w", err)
	}

	s.current = &a
	s.log.Info(ctx, "logged in", "username", a.Username)
	return a, nil
}

// Logout releases the bound model and clears the current account. Logging
// out while logged out is a no-op.
func (s *Session) Logout(ctx context.Context) {
	if s.current == nil {
		return
	}
	s.binder.Unbind(ctx)
	username := s.current.Username
	s.current = nil
	s.log.Info(ctx, "logged out", "username", username)
}

// CurrentAccount returns the logged-in account, if any.
func (s *Session) CurrentAccount() (Account, bool) {
	if s.current == nil {
		return Account{}, false
	}
	return *s.current, true
}

// IsLoggedIn reports whether an account is currently bound.
func (s *Session) IsLoggedIn() bool { return s.current != nil }
