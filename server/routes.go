package server

import "net/http"

func (s *Server) initRoutes() {
	// SSO login handshake
	s.RegisterRouteFunc("POST "+RouteSSOLoginInit, s.InitializeSSOLoginHandler())
	s.RegisterRouteFunc("GET "+RouteSSOLoginRedirect, s.RedirectSSOLoginHandler())
	s.RegisterRouteFunc("GET "+RoutePopupWithSession, s.PopupEntryWithSessionHandler())
	s.RegisterRouteFunc("GET "+RoutePopupWithoutSession, s.PopupEntryWithoutSessionHandler())

	// Generic proxy
	s.RegisterRouteFunc("GET "+RouteProxyWithUserToken, s.ProxyWithUserTokenHandler(http.MethodGet))
	s.RegisterRouteFunc("POST "+RouteProxyWithUserToken, s.ProxyWithUserTokenHandler(http.MethodPost))
	s.RegisterRouteFunc("GET "+RouteProxyWithBearer, s.ProxyWithBearerHandler(http.MethodGet))
	s.RegisterRouteFunc("POST "+RouteProxyWithBearer, s.ProxyWithBearerHandler(http.MethodPost))

	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// Role-gated operational surface
	s.RegisterRouteHandler("GET "+RouteClientStatus,
		ChainMiddleware(s.ClientStatusHandler(), s.LoggingMiddleware, s.RecoverMiddleware, s.RequireBasicAuthRole("user", "admin")))
	s.RegisterRouteHandler("GET "+RouteAdminSpecifications,
		ChainMiddleware(s.AdminSpecificationsHandler(), s.LoggingMiddleware, s.RecoverMiddleware, s.RequireBasicAuthRole("admin")))
}
