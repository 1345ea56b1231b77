package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Issuer    string   // Optional: expected "iss" of access tokens, also advertised in discovery
	Audience  []string // Optional: accepted "aud" values (comma separated), empty disables the check
	PublicURL string   // Optional: base URL advertised in discovery (default: http://localhost:PORT)

	JWKSURL             string        // Provider JWKS endpoint, refreshed in the background
	JWKSRefreshInterval time.Duration // Refresh interval for JWKSURL (default: 15m)
	JWKSFile            string        // Static JWKS document, used when JWKSURL is empty

	DatabaseFile        string        // Path to SQLite database file (default: ./directory.db)
	PepperFile          string        // Path to file containing pepper for password hashing (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("DIRECTORY_ISSUER"),
		Audience:            splitList(os.Getenv("DIRECTORY_AUDIENCE")),
		PublicURL:           strings.TrimSuffix(os.Getenv("DIRECTORY_PUBLIC_URL"), "/"),
		JWKSURL:             os.Getenv("DIRECTORY_JWKS_URL"),
		JWKSRefreshInterval: getEnvDurationOrDefault("DIRECTORY_JWKS_REFRESH_INTERVAL", 15*time.Minute),
		JWKSFile:            os.Getenv("DIRECTORY_JWKS_FILE"),
		DatabaseFile:        getEnvOrDefault("DIRECTORY_DATABASE_FILE", "directory.db"),
		PepperFile:          getEnvOrDefault("DIRECTORY_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	return cfg
}

func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
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

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
