package ssologin

import (
	"errors"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("login session not found")

// Store holds in-flight login sessions keyed by their random identifier.
type Store interface {
	Upsert(id uuid.UUID, session Session) error
	Get(id uuid.UUID) (Session, error)
	Delete(id uuid.UUID) error
}
