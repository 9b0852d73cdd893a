package constants

import (
	"os"
	"strings"
)

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetAllowedOrigins() []string {
	var res []string
	for _, origin := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

// GetSentryDSN returns "" when error reporting is disabled.
func GetSentryDSN() string {
	return getEnv("SENTRY_DSN", "")
}

func GetEnvironment() string {
	return getEnv("ENVIRONMENT", "development")
}

// Command line defaults.
const (
	DefaultRoot      = "C"
	DefaultBaseScale = "major"
	DefaultMode      = "3"
)
