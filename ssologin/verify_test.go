package ssologin_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/ssologin"
	"github.com/stretchr/testify/require"
)

func TestVerifyWithoutSecret_Match(t *testing.T) {
	id := uuid.New()
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}
	session := &ssologin.Session{ID: id, Status: ssologin.StatusInitialized, ApplicationName: app.Name}

	failure := ssologin.VerifyWithoutSecret(session, app, id, ssologin.StatusInitialized)
	require.Nil(t, failure)
}

func TestVerifyWithoutSecret_NilSessionIs404(t *testing.T) {
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}

	failure := ssologin.VerifyWithoutSecret(nil, app, uuid.New(), ssologin.StatusInitialized)
	require.NotNil(t, failure)
	require.Equal(t, http.StatusNotFound, failure.Code)
}

func TestVerifyWithoutSecret_ApplicationMismatchIs403(t *testing.T) {
	id := uuid.New()
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}
	mismatch := applications.Application{ID: "error", Name: "error"}
	session := &ssologin.Session{ID: id, Status: ssologin.StatusInitialized, ApplicationName: app.Name}

	failure := ssologin.VerifyWithoutSecret(session, mismatch, id, ssologin.StatusInitialized)
	require.NotNil(t, failure)
	require.Equal(t, http.StatusForbidden, failure.Code)
}

func TestVerifyWithoutSecret_StatusMismatchIs403(t *testing.T) {
	id := uuid.New()
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}
	session := &ssologin.Session{ID: id, Status: ssologin.StatusInitialized, ApplicationName: app.Name}

	// Exact-match only: INITIALIZED does not satisfy REDIRECTED.
	failure := ssologin.VerifyWithoutSecret(session, app, id, ssologin.StatusRedirected)
	require.NotNil(t, failure)
	require.Equal(t, http.StatusForbidden, failure.Code)
}

func TestVerifyWithSecret_MatchingHash(t *testing.T) {
	id := uuid.New()
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}
	session := &ssologin.Session{
		ID:              id,
		Status:          ssologin.StatusInitialized,
		ApplicationName: app.Name,
		SecretHash:      ssologin.Hash("sessionSecretValue"),
	}

	failure := ssologin.VerifyWithSecret(session, app, id, ssologin.StatusInitialized, "sessionSecretValue")
	require.Nil(t, failure)
}

func TestVerifyWithSecret_NilSessionIs404(t *testing.T) {
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}

	failure := ssologin.VerifyWithSecret(nil, app, uuid.New(), ssologin.StatusInitialized, "irrelevant")
	require.NotNil(t, failure)
	require.Equal(t, http.StatusNotFound, failure.Code)
}

func TestVerifyWithSecret_SecretMismatchIs403(t *testing.T) {
	id := uuid.New()
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}
	session := &ssologin.Session{
		ID:              id,
		Status:          ssologin.StatusInitialized,
		ApplicationName: app.Name,
		SecretHash:      ssologin.Hash("expectedSecret"),
	}

	failure := ssologin.VerifyWithSecret(session, app, id, ssologin.StatusInitialized, "presentedSecret")
	require.NotNil(t, failure)
	require.Equal(t, http.StatusForbidden, failure.Code)
}

func TestVerifyWithSecret_404TakesPrecedenceOver403(t *testing.T) {
	app := applications.Application{ID: "unitTestId", Name: "unitTest"}

	// Nil session plus a guaranteed secret mismatch: the 404 wins.
	failure := ssologin.VerifyWithSecret(nil, app, uuid.New(), ssologin.StatusRedirected, "whatever")
	require.NotNil(t, failure)
	require.Equal(t, http.StatusNotFound, failure.Code)
}

func TestHash_IsIdempotent(t *testing.T) {
	hash1 := ssologin.Hash("ThisSecret")
	hash2 := ssologin.Hash("ThisSecret")

	require.NotEmpty(t, hash1)
	require.Equal(t, hash1, hash2)
}

func TestHash_DistinctInputsDistinctDigests(t *testing.T) {
	require.NotEqual(t, ssologin.Hash("ThisSecret"), ssologin.Hash("ThatSecret"))
}
