// Package session holds the process-wide bearer token of the signed-in admin.
//
// The token is read by every outbound request and written only by a
// successful login, an explicit logout, or the API client's 401 handler.
package session

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Persister is the durable backing store of the token.
type Persister interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type Session struct {
	mu        sync.RWMutex
	token     string
	persister Persister
}

// New initializes a Session from p. A nil persister keeps the token in memory.
func New(p Persister) (*Session, error) {
	if p == nil {
		p = &MemoryPersister{}
	}
	token, err := p.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load session")
	}
	return &Session{token: strings.TrimSpace(token), persister: p}, nil
}

// Token reports the stored token and whether one is present.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *Session) SignIn(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty access token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.Save(token); err != nil {
		return errors.Wrap(err, "persist session")
	}
	s.token = token
	return nil
}

// SignOut forgets the token. The in-memory token is cleared even when the
// persister fails so that no further request carries it.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := s.persister.Clear(); err != nil {
		return errors.Wrap(err, "clear session")
	}
	return nil
}
