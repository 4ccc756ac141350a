package config

import "strings"

type Security struct{}

var _ SecurityConfig = Security{}

// GetJWTSecret is the shared HS256 key used to verify bearer tokens on
// the bearer proxy routes.
func (Security) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "")
}

// GetOIDCIssuer, when set, switches bearer verification to OIDC
// discovery against this issuer instead of the shared HS256 key.
func (Security) GetOIDCIssuer() string {
	return GetEnv("OIDC_ISSUER", "")
}

func (Security) GetOIDCClientID() string {
	return GetEnv("OIDC_CLIENT_ID", "")
}

// GetBasicAuthUsers parses BASIC_AUTH_USERS, a semicolon separated list
// of username:bcryptHash:role entries. Bcrypt hashes contain no ':' or
// ';' so the split is unambiguous.
func (Security) GetBasicAuthUsers() []BasicAuthUser {
	raw := GetEnv("BASIC_AUTH_USERS", "")
	if raw == "" {
		return nil
	}
	var users []BasicAuthUser
	for _, entry := range strings.Split(raw, ";") {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			continue
		}
		users = append(users, BasicAuthUser{
			Username:     parts[0],
			PasswordHash: parts[1],
			Role:         parts[2],
		})
	}
	return users
}
