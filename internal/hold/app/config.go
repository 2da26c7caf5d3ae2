package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	JWTSecret string // Shared HS256 secret for verifying access tokens
	Issuer    string // Optional: expected issuer claim; empty disables the check

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./holds.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// DefaultJWTSecret is the development fallback. Production deployments must
// set JWT_SECRET.
const DefaultJWTSecret = "dev-secret-change-me"

func LoadConfig() Config {
	return Config{
		JWTSecret:           getEnvOrDefault("JWT_SECRET", DefaultJWTSecret),
		Issuer:              os.Getenv("JWT_ISSUER"),
		DatabaseFile:        getEnvOrDefault("HOLD_DATABASE_FILE", "holds.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
