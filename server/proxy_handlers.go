package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/parkgate/spaproxy/command"
	"github.com/parkgate/spaproxy/proxyspec"
)

// ProxyWithUserTokenHandler proxies a request whose user token id comes
// from the path.
func (s *Server) ProxyWithUserTokenHandler(method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.proxyRequest(w, r, method,
			r.PathValue("secret"), r.PathValue("userTokenId"), r.PathValue("targetName"))
	}
}

// ProxyWithBearerHandler proxies a request whose user token id is
// carried in a bearer credential. A missing or malformed bearer is 403,
// decided before any identity lookup leaks anything.
func (s *Server) ProxyWithBearerHandler(method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawToken, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		userTokenID, err := s.verifier.UserTokenID(r.Context(), rawToken)
		if err != nil {
			log.Warn().Msg("bearer token rejected")
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		s.proxyRequest(w, r, method,
			r.PathValue("secret"), userTokenID, r.PathValue("targetName"))
	}
}

func (s *Server) proxyRequest(w http.ResponseWriter, r *http.Request, method, secret, userTokenID, targetName string) {
	// Identity failures are always 403, never 404: an unauthenticated
	// caller must not learn whether a secret or target exists.
	appSession, err := s.secrets.Resolve(secret)
	if err != nil {
		log.Warn().Msg("unable to locate application session from secret, returning FORBIDDEN")
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	spec, ok := s.registry.Get(method, targetName)
	if !ok {
		log.Info().Str("method", method).Str("target", targetName).Msg("proxy specification not found")
		http.Error(w, "unknown target", http.StatusNotFound)
		return
	}

	resolved := proxyspec.Resolve(spec,
		appSession.ApplicationTokenID, userTokenID,
		s.config.GetLogonServiceURL(), s.config.GetSecurityTokenServiceURL())

	result, err := s.executor.Do(r.Context(), command.Command{Resolved: resolved, Headers: r.Header})
	if err != nil {
		s.setCORSHeaders(w, appSession.Application)
		switch {
		case errors.Is(err, command.ErrCircuitOpen):
			http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
		case errors.Is(err, command.ErrUpstreamTimeout), errors.Is(err, command.ErrUpstreamUnavailable):
			http.Error(w, "upstream error", http.StatusBadGateway)
		default:
			log.Error().Err(err).Str("target", targetName).Msg("proxy command failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	s.setCORSHeaders(w, appSession.Application)
	if contentType := result.Header.Get("Content-Type"); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(result.StatusCode)
	if _, err := w.Write(result.Body); err != nil {
		log.Error().Err(err).Msg("writing proxied response")
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	rawToken := strings.TrimSpace(parts[1])
	return rawToken, rawToken != ""
}
