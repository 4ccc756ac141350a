package sessions_test

import (
	"errors"
	"testing"
	"time"

	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/sessions"
	"github.com/stretchr/testify/require"
)

func newSession(tokenID string, ttl time.Duration) sessions.Session {
	return sessions.Session{
		Application:        applications.Application{ID: "appId", Name: "testApp", RedirectURL: "https://spa.example.com"},
		ApplicationTokenID: tokenID,
		ExpiresAt:          time.Now().Add(ttl),
	}
}

func TestInMemoryStore_RegisterAndResolve(t *testing.T) {
	store := sessions.NewInMemoryStore()

	require.NoError(t, store.Register("secretA", newSession("token-1", time.Hour)))

	session, err := store.Resolve("secretA")
	require.NoError(t, err)
	require.Equal(t, "secretA", session.Secret)
	require.Equal(t, "token-1", session.ApplicationTokenID)
	require.Equal(t, "testApp", session.Application.Name)
}

func TestInMemoryStore_DuplicateSecret(t *testing.T) {
	store := sessions.NewInMemoryStore()

	require.NoError(t, store.Register("secretA", newSession("token-1", time.Hour)))
	err := store.Register("secretA", newSession("token-2", time.Hour))
	require.ErrorIs(t, err, sessions.ErrDuplicateSecret)
}

func TestInMemoryStore_UnknownSecretIsNotFound(t *testing.T) {
	store := sessions.NewInMemoryStore()

	_, err := store.Resolve("neverRegistered")
	require.ErrorIs(t, err, sessions.ErrNotFound)
}

func TestInMemoryStore_ExpiredSecretIndistinguishableFromUnknown(t *testing.T) {
	store := sessions.NewInMemoryStore()
	require.NoError(t, store.Register("expired", newSession("token-1", time.Hour)))

	sessions.NowTimeFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }
	defer func() { sessions.NowTimeFunc = time.Now }()

	_, expiredErr := store.Resolve("expired")
	_, unknownErr := store.Resolve("neverRegistered")

	require.ErrorIs(t, expiredErr, sessions.ErrNotFound)
	require.True(t, errors.Is(expiredErr, unknownErr))
}

func TestInMemoryStore_ExpiredSecretCanBeReRegistered(t *testing.T) {
	store := sessions.NewInMemoryStore()
	require.NoError(t, store.Register("secretA", newSession("token-1", time.Hour)))

	sessions.NowTimeFunc = func() time.Time { return time.Now().Add(2 * time.Hour) }
	defer func() { sessions.NowTimeFunc = time.Now }()

	require.NoError(t, store.Register("secretA", newSession("token-2", 3*time.Hour)))
}

func TestInMemoryStore_Invalidate(t *testing.T) {
	store := sessions.NewInMemoryStore()
	require.NoError(t, store.Register("secretA", newSession("token-1", time.Hour)))

	require.NoError(t, store.Invalidate("secretA"))
	_, err := store.Resolve("secretA")
	require.ErrorIs(t, err, sessions.ErrNotFound)

	// Invalidating an absent secret is a no-op.
	require.NoError(t, store.Invalidate("secretA"))
}
