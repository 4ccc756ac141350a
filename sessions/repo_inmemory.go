package sessions

import (
	"sync"
	"time"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// InMemoryStore is a mutex-guarded map of secret to session. Entries are
// independent, so no cross-entry locking is needed.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

var _ Store = (*InMemoryStore)(nil)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]Session)}
}

func (s *InMemoryStore) Register(secret string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sessions[secret]; ok && !existing.Expired(NowTimeFunc()) {
		return ErrDuplicateSecret
	}
	session.Secret = secret
	s.sessions[secret] = session
	return nil
}

func (s *InMemoryStore) Resolve(secret string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[secret]
	if !ok {
		return Session{}, ErrNotFound
	}
	if session.Expired(NowTimeFunc()) {
		delete(s.sessions, secret)
		return Session{}, ErrNotFound
	}
	return session, nil
}

func (s *InMemoryStore) Invalidate(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, secret)
	return nil
}
