package ssologin

import (
	"time"

	"github.com/google/uuid"
)

// Status is the login-session state. Transitions: INITIALIZED →
// REDIRECTED → COMPLETED; EXPIRED is reached by TTL only.
type Status string

const (
	StatusInitialized Status = "INITIALIZED"
	StatusRedirected  Status = "REDIRECTED"
	StatusCompleted   Status = "COMPLETED"
	StatusExpired     Status = "EXPIRED"
)

// Session is one SSO login handshake in flight. SecretHash, once set,
// never changes for the life of the session.
type Session struct {
	ID              uuid.UUID
	Status          Status
	ApplicationName string
	SecretHash      string
	ExpiresAt       time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
