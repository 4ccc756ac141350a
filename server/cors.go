package server

import (
	"net/http"

	"github.com/parkgate/spaproxy/applications"
)

// corsOrigin picks the Access-Control-Allow-Origin for a caller
// application: the deployment-wide override if set, else the
// application's registered redirect URL, else any origin.
func (s *Server) corsOrigin(app applications.Application) string {
	if origin := s.config.GetAllowedOrigin(); origin != "" {
		return origin
	}
	if redirectURL := s.apps.FindRedirectURL(app); redirectURL != "" {
		return redirectURL
	}
	return "*"
}

func (s *Server) setCORSHeaders(w http.ResponseWriter, app applications.Application) {
	w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin(app))
	w.Header().Set("Access-Control-Allow-Credentials", "true")
	w.Header().Set("Access-Control-Allow-Headers", "*")
}
