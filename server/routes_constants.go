package server

const (
	RouteSSOLoginInit        = "/{appNameOrSecret}/user/auth/ssologin/{$}"
	RouteSSOLoginRedirect    = "/{appNameOrSecret}/user/auth/ssologin/{sessionId}"
	RoutePopupWithSession    = "/application/session/{secret}/user/auth/ssologin/{sessionId}"
	RoutePopupWithoutSession = "/application/{appName}/user/auth/ssologin/{sessionId}"

	RouteProxyWithUserToken = "/generic/{secret}/{userTokenId}/{targetName}"
	RouteProxyWithBearer    = "/generic/{secret}/{targetName}"

	RouteHealth = "/health"

	RouteClientStatus        = "/client/status"
	RouteAdminSpecifications = "/admin/specifications"
)
