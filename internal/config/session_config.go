package config

import "strconv"

type Sessions struct{}

var _ SessionConfig = Sessions{}

// GetSessionTTL returns the time-to-live in seconds applied uniformly to
// application sessions and SSO login sessions.
func (Sessions) GetSessionTTL() int {
	return getEnvInt("SESSION_TTL_SECONDS", 86400)
}

// GetAllowedOrigin overrides the per-application CORS origin when set.
// "*" allows any origin; empty means "use the caller application's
// registered redirect URL".
func (Sessions) GetAllowedOrigin() string {
	return GetEnv("ALLOWED_ORIGIN", "")
}

func getEnvInt(envVar string, defaultValue int) int {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
