package config

type Backend struct{}

var _ BackendConfig = Backend{}

// GetLogonServiceURL is the base URL of the backend logon service that the
// login handshake redirects browsers to.
func (Backend) GetLogonServiceURL() string {
	return GetEnv("LOGON_SERVICE_URL", "http://localhost:9998/sso")
}

// GetSecurityTokenServiceURL is the base URL of the backend token service
// that issues application and user tokens.
func (Backend) GetSecurityTokenServiceURL() string {
	return GetEnv("SECURITY_TOKEN_SERVICE_URL", "http://localhost:9998/tokenservice")
}

func (Backend) GetApplicationID() string {
	return GetEnv("APPLICATION_ID", "")
}

func (Backend) GetApplicationName() string {
	return GetEnv("APPLICATION_NAME", "spa-session-proxy")
}

func (Backend) GetApplicationSecret() string {
	return GetEnv("APPLICATION_SECRET", "")
}
