package token_test

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/parkgate/spaproxy/token"
)

func mintToken(t *testing.T, secret string, claims jwtlib.MapClaims) string {
	t.Helper()
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestHS256Verifier_ExtractsUserTokenID(t *testing.T) {
	verifier := token.NewHS256Verifier("test-secret")
	raw := mintToken(t, "test-secret", jwtlib.MapClaims{
		"usertokenid": "userTok1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	userTokenID, err := verifier.UserTokenID(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, "userTok1", userTokenID)
}

func TestHS256Verifier_WrongKeyIsInvalid(t *testing.T) {
	verifier := token.NewHS256Verifier("test-secret")
	raw := mintToken(t, "another-secret", jwtlib.MapClaims{"usertokenid": "userTok1"})

	_, err := verifier.UserTokenID(context.Background(), raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestHS256Verifier_ExpiredTokenIsInvalid(t *testing.T) {
	verifier := token.NewHS256Verifier("test-secret")
	raw := mintToken(t, "test-secret", jwtlib.MapClaims{
		"usertokenid": "userTok1",
		"exp":         time.Now().Add(-time.Hour).Unix(),
	})

	_, err := verifier.UserTokenID(context.Background(), raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestHS256Verifier_MissingClaimIsInvalid(t *testing.T) {
	verifier := token.NewHS256Verifier("test-secret")
	raw := mintToken(t, "test-secret", jwtlib.MapClaims{"sub": "someone"})

	_, err := verifier.UserTokenID(context.Background(), raw)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestHS256Verifier_GarbageIsInvalid(t *testing.T) {
	verifier := token.NewHS256Verifier("test-secret")

	_, err := verifier.UserTokenID(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, token.ErrInvalidToken)
}
