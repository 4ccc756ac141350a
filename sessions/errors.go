package sessions

import "errors"

var (
	// ErrNotFound covers both "secret never existed" and "secret
	// expired": callers must not be able to tell the two apart.
	ErrNotFound        = errors.New("session not found")
	ErrDuplicateSecret = errors.New("secret already registered")
)
