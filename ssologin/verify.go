package ssologin

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/parkgate/spaproxy/applications"
)

// Failure is a typed verification failure carrying the HTTP status the
// caller should respond with.
type Failure struct {
	Code    int
	Message string
}

// VerifyWithoutSecret checks that a login session exists, belongs to the
// expected application and is in exactly the expected status. A missing
// session is 404; any mismatch on an existing session is 403. The 404
// check always takes precedence.
func VerifyWithoutSecret(session *Session, app applications.Application, id uuid.UUID, expected Status) *Failure {
	if session == nil {
		return &Failure{Code: http.StatusNotFound, Message: "login session not found"}
	}
	if session.ApplicationName != app.Name {
		return &Failure{Code: http.StatusForbidden, Message: "login session belongs to another application"}
	}
	if session.Status != expected {
		return &Failure{Code: http.StatusForbidden, Message: "login session in unexpected state"}
	}
	return nil
}

// VerifyWithSecret additionally requires the presented session secret to
// hash to the stored secret hash. This binds the handshake to the holder
// of the secret: knowing the session ID alone is not enough to complete
// someone else's login.
func VerifyWithSecret(session *Session, app applications.Application, id uuid.UUID, expected Status, presentedSecret string) *Failure {
	if failure := VerifyWithoutSecret(session, app, id, expected); failure != nil {
		return failure
	}
	if Hash(presentedSecret) != session.SecretHash {
		return &Failure{Code: http.StatusForbidden, Message: "session secret mismatch"}
	}
	return nil
}
