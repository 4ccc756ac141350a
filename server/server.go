package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/parkgate/spaproxy/applications"
	"github.com/parkgate/spaproxy/command"
	"github.com/parkgate/spaproxy/internal/config"
	"github.com/parkgate/spaproxy/logon"
	"github.com/parkgate/spaproxy/proxyspec"
	"github.com/parkgate/spaproxy/sessions"
	"github.com/parkgate/spaproxy/ssologin"
	"github.com/parkgate/spaproxy/token"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "production")
	mux    *http.ServeMux
	routes []string
	config config.Config

	apps     applications.Repo
	secrets  sessions.Store
	flow     *ssologin.Flow
	registry *proxyspec.Registry
	executor *command.Executor
	verifier token.Verifier
	tokens   logon.TokenSource
}

func New(cfg config.Config, apps applications.Repo, secrets sessions.Store,
	loginSessions ssologin.Store, registry *proxyspec.Registry,
	executor *command.Executor, verifier token.Verifier, tokens logon.TokenSource) (*Server, error) {

	if registry == nil {
		return nil, fmt.Errorf("[Server New] specification registry is required")
	}

	ttl := time.Duration(cfg.GetSessionTTL()) * time.Second
	s := &Server{
		mux:      http.NewServeMux(),
		config:   cfg,
		apps:     apps,
		secrets:  secrets,
		flow:     ssologin.NewFlow(apps, secrets, loginSessions, ttl),
		registry: registry,
		executor: executor,
		verifier: verifier,
		tokens:   tokens,
	}
	s.env = cfg.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
