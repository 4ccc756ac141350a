package config

type Config interface {
	EnvConfig
	BackendConfig
	SessionConfig
	ProxyConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

// BackendConfig locates the backend identity services and carries the
// credentials this gateway logs on with.
type BackendConfig interface {
	GetLogonServiceURL() string
	GetSecurityTokenServiceURL() string
	GetApplicationID() string
	GetApplicationName() string
	GetApplicationSecret() string
}

type SessionConfig interface {
	GetSessionTTL() int // seconds, applied to application and login sessions alike
	GetAllowedOrigin() string
}

type ProxyConfig interface {
	GetSpecificationsDir() string
	GetCommandTimeoutSeconds() int
	GetBreakerFailureThreshold() int
	GetBreakerSleepWindowSeconds() int
}

type SecurityConfig interface {
	GetJWTSecret() string
	GetOIDCIssuer() string
	GetOIDCClientID() string
	GetBasicAuthUsers() []BasicAuthUser
}

// BasicAuthUser is a gate credential for the /client and /admin surfaces.
// PasswordHash is a bcrypt hash.
type BasicAuthUser struct {
	Username     string
	PasswordHash string
	Role         string
}

type mainConfig struct {
	EnvVars
	Backend
	Sessions
	Proxy
	Security
}

func New() Config {
	return mainConfig{}
}
