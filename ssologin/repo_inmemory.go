package ssologin

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// InMemoryStore is a mutex-guarded map of session ID to login session.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]Session
}

var _ Store = (*InMemoryStore)(nil)

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[uuid.UUID]Session)}
}

func (s *InMemoryStore) Upsert(id uuid.UUID, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session.ID = id
	s.sessions[id] = session
	return nil
}

// Get returns the session, or ErrSessionNotFound if it is unknown or its
// TTL has elapsed. Expired entries are removed lazily here.
func (s *InMemoryStore) Get(id uuid.UUID) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if session.Expired(NowTimeFunc()) {
		delete(s.sessions, id)
		return Session{}, ErrSessionNotFound
	}
	return session, nil
}

func (s *InMemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
