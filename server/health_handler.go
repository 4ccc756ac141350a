package server

import "net/http"

// HealthHandler reports liveness and the state of the gateway's own
// application token. Always 200, independent of session or proxy state.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"Status":                   "OK",
			"hasApplicationToken":      boolString(s.tokens.HasApplicationToken()),
			"hasValidApplicationToken": boolString(s.tokens.HasValidApplicationToken()),
		})
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
