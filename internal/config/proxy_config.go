package config

type Proxy struct{}

var _ ProxyConfig = Proxy{}

// GetSpecificationsDir is the directory holding proxy specification JSON
// files loaded into the registry at startup.
func (Proxy) GetSpecificationsDir() string {
	return GetEnv("PROXY_SPECIFICATIONS_DIR", "./specifications")
}

func (Proxy) GetCommandTimeoutSeconds() int {
	return getEnvInt("PROXY_COMMAND_TIMEOUT_SECONDS", 10)
}

func (Proxy) GetBreakerFailureThreshold() int {
	return getEnvInt("PROXY_BREAKER_FAILURE_THRESHOLD", 5)
}

func (Proxy) GetBreakerSleepWindowSeconds() int {
	return getEnvInt("PROXY_BREAKER_SLEEP_WINDOW_SECONDS", 10)
}
