package ssologin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/sessions"
)

var ErrApplicationNotFound = errors.New("no application for name or secret")

// Flow drives the SSO login handshake: it creates login sessions, binds
// them to application session secrets and verifies presented credentials
// against the stored session.
type Flow struct {
	apps    applications.Repo
	secrets sessions.Store
	store   Store
	ttl     time.Duration
}

func NewFlow(apps applications.Repo, secrets sessions.Store, store Store, ttl time.Duration) *Flow {
	return &Flow{
		apps:    apps,
		secrets: secrets,
		store:   store,
		ttl:     ttl,
	}
}

// Initialize creates a new login session in status INITIALIZED and
// returns it together with the login URL the caller should open. The
// caller identifies itself by application name or by an application
// session secret; when a secret is used the session is bound to it via
// its hash. Fails with ErrApplicationNotFound if neither resolves.
func (f *Flow) Initialize(appNameOrSecret, gatewayBaseURL string) (Session, string, error) {
	app, secret, err := f.resolveApplication(appNameOrSecret)
	if err != nil {
		return Session{}, "", err
	}

	session := Session{
		ID:              uuid.New(),
		Status:          StatusInitialized,
		ApplicationName: app.Name,
		ExpiresAt:       NowTimeFunc().Add(f.ttl),
	}
	if secret != "" {
		session.SecretHash = Hash(secret)
	}

	if err := f.store.Upsert(session.ID, session); err != nil {
		return Session{}, "", fmt.Errorf("storing login session: %w", err)
	}

	loginURL := fmt.Sprintf("%s/%s/user/auth/ssologin/%s",
		strings.TrimSuffix(gatewayBaseURL, "/"), appNameOrSecret, session.ID)
	return session, loginURL, nil
}

// ResolveApplication maps an application name or session secret to the
// application identity. Name lookup wins; a secret additionally yields
// the secret itself so the login session can be bound to it.
func (f *Flow) ResolveApplication(appNameOrSecret string) (applications.Application, error) {
	app, _, err := f.resolveApplication(appNameOrSecret)
	return app, err
}

func (f *Flow) resolveApplication(appNameOrSecret string) (applications.Application, string, error) {
	if app, err := f.apps.FindApplication(appNameOrSecret); err == nil {
		return app, "", nil
	}
	if session, err := f.secrets.Resolve(appNameOrSecret); err == nil {
		return session.Application, appNameOrSecret, nil
	}
	return applications.Application{}, "", ErrApplicationNotFound
}

// Get returns the stored login session, or nil if it is unknown or
// expired. The nil return feeds straight into the verify functions,
// which turn it into a 404.
func (f *Flow) Get(id uuid.UUID) *Session {
	session, err := f.store.Get(id)
	if err != nil {
		return nil
	}
	return &session
}

// Advance moves a login session to a new status. SecretHash is carried
// over untouched: once set it never changes.
func (f *Flow) Advance(session Session, status Status) (Session, error) {
	session.Status = status
	if err := f.store.Upsert(session.ID, session); err != nil {
		return Session{}, fmt.Errorf("advancing login session: %w", err)
	}
	return session, nil
}

// Complete marks the session COMPLETED and removes it from the store;
// the handshake is single-use.
func (f *Flow) Complete(session Session) error {
	return f.store.Delete(session.ID)
}
