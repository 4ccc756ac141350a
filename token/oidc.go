package token

import (
	"context"
	"fmt"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
)

// OIDCVerifier verifies bearer tokens as ID tokens against a configured
// OIDC issuer. The provider is discovered lazily on first use so the
// gateway can start while the issuer is still coming up.
type OIDCVerifier struct {
	issuer   string
	clientID string

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
}

var _ Verifier = (*OIDCVerifier)(nil)

func NewOIDCVerifier(issuer, clientID string) *OIDCVerifier {
	return &OIDCVerifier{issuer: issuer, clientID: clientID}
}

func (v *OIDCVerifier) idTokenVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.verifier != nil {
		return v.verifier, nil
	}
	provider, err := oidc.NewProvider(ctx, v.issuer)
	if err != nil {
		return nil, fmt.Errorf("discovering oidc provider %s: %w", v.issuer, err)
	}
	v.verifier = provider.Verifier(&oidc.Config{ClientID: v.clientID})
	return v.verifier, nil
}

func (v *OIDCVerifier) UserTokenID(ctx context.Context, rawToken string) (string, error) {
	verifier, err := v.idTokenVerifier(ctx)
	if err != nil {
		return "", ErrInvalidToken
	}
	idToken, err := verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	var claims struct {
		UserTokenID string `json:"usertokenid"`
	}
	if err := idToken.Claims(&claims); err != nil || claims.UserTokenID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserTokenID, nil
}
