package token

import (
	"context"
	"errors"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid bearer token")

// UserTokenIDClaim is the JWT claim carrying the backend-issued user
// token identifier.
const UserTokenIDClaim = "usertokenid"

// Verifier maps a raw bearer credential to a user token id. Verification
// failure of any kind yields ErrInvalidToken; callers treat it as 403.
type Verifier interface {
	UserTokenID(ctx context.Context, rawToken string) (string, error)
}

// HS256Verifier verifies bearer JWTs signed with a shared secret.
type HS256Verifier struct {
	secret []byte
}

var _ Verifier = (*HS256Verifier)(nil)

func NewHS256Verifier(secret string) *HS256Verifier {
	return &HS256Verifier{secret: []byte(secret)}
}

func (v *HS256Verifier) UserTokenID(_ context.Context, rawToken string) (string, error) {
	parsed, err := jwtlib.Parse(rawToken, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userTokenID, ok := claims[UserTokenIDClaim].(string)
	if !ok || userTokenID == "" {
		return "", ErrInvalidToken
	}
	return userTokenID, nil
}
