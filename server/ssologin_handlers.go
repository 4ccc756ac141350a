package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/ssologin"
)

// InitializeSSOLoginHandler creates a login session for the application
// identified by name or session secret and returns the login URL the SPA
// should open in its popup.
func (s *Server) InitializeSSOLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appNameOrSecret := r.PathValue("appNameOrSecret")

		session, loginURL, err := s.flow.Initialize(appNameOrSecret, s.config.GetBaseURL())
		if err != nil {
			if errors.Is(err, ssologin.ErrApplicationNotFound) {
				http.Error(w, "unknown application", http.StatusNotFound)
				return
			}
			log.Error().Err(err).Msg("initializing login session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		app, _ := s.flow.ResolveApplication(appNameOrSecret)
		s.setCORSHeaders(w, app)
		writeJSON(w, http.StatusOK, map[string]string{
			"ssoLoginUrl":  loginURL,
			"ssoLoginUUID": session.ID.String(),
		})
	}
}

// RedirectSSOLoginHandler performs the redirect step of the handshake:
// it sends the browser to the backend logon service, forwarding the
// caller's query parameters verbatim, and advances the session to
// REDIRECTED.
func (s *Server) RedirectSSOLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appNameOrSecret := r.PathValue("appNameOrSecret")

		app, err := s.flow.ResolveApplication(appNameOrSecret)
		if err != nil {
			http.Error(w, "unknown application", http.StatusNotFound)
			return
		}
		id, err := uuid.Parse(r.PathValue("sessionId"))
		if err != nil {
			http.Error(w, "unknown login session", http.StatusNotFound)
			return
		}

		session := s.flow.Get(id)
		if failure := ssologin.VerifyWithoutSecret(session, app, id, ssologin.StatusInitialized); failure != nil {
			http.Error(w, failure.Message, failure.Code)
			return
		}

		location, err := ssologin.BuildLogonRedirectURL(
			s.config.GetLogonServiceURL(), s.config.GetBaseURL(), app.Name, r.URL.Query())
		if err != nil {
			log.Error().Err(err).Msg("building logon redirect url")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if _, err := s.flow.Advance(*session, ssologin.StatusRedirected); err != nil {
			log.Error().Err(err).Msg("advancing login session")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, location, http.StatusFound)
	}
}

// PopupEntryWithSessionHandler completes the handshake for a caller
// holding an application session secret. The presented secret must hash
// to the value bound at initialization; knowing the session ID alone is
// not enough.
func (s *Server) PopupEntryWithSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret := r.PathValue("secret")

		appSession, err := s.secrets.Resolve(secret)
		if err != nil {
			http.Error(w, "unknown application", http.StatusNotFound)
			return
		}
		id, err := uuid.Parse(r.PathValue("sessionId"))
		if err != nil {
			http.Error(w, "unknown login session", http.StatusNotFound)
			return
		}

		session := s.flow.Get(id)
		if failure := ssologin.VerifyWithSecret(session, appSession.Application, id, ssologin.StatusRedirected, secret); failure != nil {
			http.Error(w, failure.Message, failure.Code)
			return
		}

		s.completeAndRedirect(w, r, *session, appSession.Application, id)
	}
}

// PopupEntryWithoutSessionHandler completes the handshake for the
// first-time, unauthenticated popup entry keyed by application name.
func (s *Server) PopupEntryWithoutSessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, err := s.apps.FindApplication(r.PathValue("appName"))
		if err != nil {
			http.Error(w, "unknown application", http.StatusNotFound)
			return
		}
		id, err := uuid.Parse(r.PathValue("sessionId"))
		if err != nil {
			http.Error(w, "unknown login session", http.StatusNotFound)
			return
		}

		session := s.flow.Get(id)
		if failure := ssologin.VerifyWithoutSecret(session, app, id, ssologin.StatusRedirected); failure != nil {
			http.Error(w, failure.Message, failure.Code)
			return
		}

		s.completeAndRedirect(w, r, *session, app, id)
	}
}

func (s *Server) completeAndRedirect(w http.ResponseWriter, r *http.Request,
	session ssologin.Session, app applications.Application, id uuid.UUID) {

	redirectURL := s.apps.FindRedirectURL(app)
	if redirectURL == "" {
		log.Error().Str("application", app.Name).Msg("application has no redirect url")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := s.flow.Complete(session); err != nil {
		log.Error().Err(err).Msg("completing login session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	params := ssologin.BuildRedirectQueryParams(id, app, r.URL.Query())
	http.Redirect(w, r, redirectURL+"?"+params.Encode(), http.StatusFound)
}
