package session

import (
	"context"
	"sync"

	"booknet/internal/api"
	"booknet/internal/logging"
	"booknet/internal/models"
)

// Session is the process-wide authenticated identity. It is mutated only by
// Login, Logout and Refresh; readers get value copies, never a partially
// updated record.
type Session struct {
	mu     sync.RWMutex
	client *api.Client
	log    logging.Logger
	user   *models.User
}

func New(client *api.Client, log logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	return &Session{client: client, log: log}
}

// Restore loads persisted credentials into the API client. It is called once
// at startup; a missing keyring entry just leaves the session anonymous.
func (s *Session) Restore() bool {
	creds, err := LoadCredentials()
	if err != nil || creds.Token == "" {
		return false
	}
	s.client.SetToken(creds.Token)
	return true
}

// Login authenticates, persists the token and refreshes the identity.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, error) {
	token, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.client.SetToken(token)

	creds := &StoredCredentials{Token: token, Username: username}
	if exp, ok := TokenExpiry(token); ok {
		creds.ExpiresAt = exp.Unix()
	}
	if err := StoreCredentials(creds); err != nil {
		// The session is still usable for this run; only persistence failed.
		s.log.Warn(ctx, "failed to persist credentials", "error", err)
	}
	return s.refreshLocked(ctx)
}

// Logout clears the token, the persisted credentials and the cached identity.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.client.SetToken("")
	return DeleteCredentials()
}

// Refresh re-fetches the identity from GET /auth/me and replaces the cached
// user wholesale.
func (s *Session) Refresh(ctx context.Context) (*models.User, error) {
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) (*models.User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// User returns a copy of the current identity, or false when anonymous.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether a bearer token is attached, regardless of
// whether the identity fetch has happened yet.
func (s *Session) Authenticated() bool {
	return s.client.Token() != ""
}
