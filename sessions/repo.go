package sessions

// Store maps opaque secrets to live application sessions.
type Store interface {
	// Register stores a session under its secret. Fails with
	// ErrDuplicateSecret if the secret is already live.
	Register(secret string, session Session) error

	// Resolve returns the session for a secret, or ErrNotFound if the
	// secret is unknown or the session has expired. Expiry is enforced
	// lazily here; an expired entry is removed on the way out.
	Resolve(secret string) (Session, error)

	// Invalidate removes a session. Removing an absent secret is a no-op.
	Invalidate(secret string) error
}
