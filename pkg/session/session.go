// Package session owns the authenticated-user context for a CLI run. It is
// created once at bootstrap, handed down to services, updated on
// login/logout, and torn down when the server rejects the stored token.
package session

import (
	"errors"
	"sync"

	"github.com/focalhq/cli/pkg/api"
	"github.com/focalhq/cli/pkg/client"
	"github.com/focalhq/cli/pkg/credentials"
	"github.com/focalhq/cli/pkg/logger"
)

// Session is the live session context. The zero value is an anonymous
// session.
type Session struct {
	mu    sync.Mutex
	creds *credentials.Credentials
	user  *api.User
}

// Hydrate builds the session for this run: load stored credentials, arm the
// HTTP client, and refresh the cached profile from the server. A network
// failure keeps the stored identity; a 401 tears the session down.
func Hydrate() (*Session, error) {
	s := &Session{}

	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}
	if creds == nil || !creds.IsValid() {
		return s, nil
	}

	client.SetAuthToken(creds.Token)
	client.OnUnauthorized(s.clear)
	s.creds = creds

	user, err := api.GetCurrentUser()
	switch {
	case err == nil:
		s.user = user
		// Keep the cached identity fields in sync with the server
		creds.DisplayName = user.DisplayName
		creds.Role = user.Role
		creds.Username = user.Username
		if saveErr := credentials.Save(creds); saveErr != nil {
			logger.Warn("Failed to refresh cached credentials", "error", saveErr)
		}
	case errors.Is(err, client.ErrSessionExpired):
		// Teardown already ran inside the client hook
		logger.Debug("Stored session rejected during hydration")
	default:
		// Offline or flaky server: keep the stored identity so
		// commands can still decide whether the user is signed in
		logger.Debug("Session refresh failed, using cached identity", "error", err)
	}

	return s, nil
}

// Login installs a fresh session after a successful login/signup call and
// persists it.
func (s *Session) Login(token string, user *api.User) error {
	creds := &credentials.Credentials{
		Token:       token,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		Email:       user.Email,
	}

	if err := credentials.Save(creds); err != nil {
		return err
	}

	client.SetAuthToken(token)
	client.OnUnauthorized(s.clear)

	s.mu.Lock()
	s.creds = creds
	s.user = user
	s.mu.Unlock()

	return nil
}

// Logout tears the session down: stored credentials, armed token, and
// in-memory state.
func (s *Session) Logout() error {
	if err := credentials.Delete(); err != nil {
		return err
	}
	client.ClearAuthToken()
	s.clear()
	return nil
}

func (s *Session) clear() {
	s.mu.Lock()
	s.creds = nil
	s.user = nil
	s.mu.Unlock()
}

// LoggedIn reports whether the session holds a usable token
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.IsValid()
}

// UserID returns the authenticated user's ID, or empty when anonymous
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.UserID
}

// Username returns the authenticated username, or empty when anonymous
func (s *Session) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.Username
}

// DisplayName returns the cached display name, or empty when anonymous
func (s *Session) DisplayName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.DisplayName
}

// IsAdmin reports whether the stored role grants admin access
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds.IsAdmin()
}

// User returns the server-refreshed profile when hydration reached the
// server, nil otherwise.
func (s *Session) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}
