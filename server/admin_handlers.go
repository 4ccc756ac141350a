package server

import "net/http"

// ClientStatusHandler reports gateway status to basic-auth'd clients.
func (s *Server) ClientStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"appName":                  s.config.GetAppName(),
			"hasValidApplicationToken": boolString(s.tokens.HasValidApplicationToken()),
		})
	}
}

// AdminSpecificationsHandler lists the registered proxy specifications.
func (s *Server) AdminSpecificationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"specifications": s.registry.Names(),
		})
	}
}
