package sessions

import (
	"time"

	"github.com/parkgate/spaproxy/applications"
)

// Session is a live application session: the security context an opaque
// secret resolves to. Created when an application authenticates with the
// backend, destroyed on expiry or explicit invalidation.
type Session struct {
	Secret             string
	Application        applications.Application
	ApplicationTokenID string
	ExpiresAt          time.Time
}

// Expired reports whether the session has passed its TTL.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
