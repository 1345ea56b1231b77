package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DIRECTORY_ISSUER", "DIRECTORY_AUDIENCE", "DIRECTORY_PUBLIC_URL",
		"DIRECTORY_JWKS_URL", "DIRECTORY_JWKS_REFRESH_INTERVAL", "DIRECTORY_JWKS_FILE",
		"DIRECTORY_DATABASE_FILE", "DIRECTORY_PEPPER_FILE",
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Empty(t, cfg.Issuer)
	require.Nil(t, cfg.Audience)
	require.Equal(t, 15*time.Minute, cfg.JWKSRefreshInterval)
	require.Equal(t, "directory.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "http://localhost:8080", cfg.PublicURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DIRECTORY_ISSUER", "https://id.example.com")
	t.Setenv("DIRECTORY_AUDIENCE", " directory, portal ,,")
	t.Setenv("DIRECTORY_PUBLIC_URL", "https://directory.example.com/")
	t.Setenv("DIRECTORY_JWKS_URL", "https://id.example.com/.well-known/jwks.json")
	t.Setenv("DIRECTORY_JWKS_REFRESH_INTERVAL", "5")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "not-a-duration")

	cfg := LoadConfig()
	require.Equal(t, "https://id.example.com", cfg.Issuer)
	require.Equal(t, []string{"directory", "portal"}, cfg.Audience)
	require.Equal(t, "https://directory.example.com", cfg.PublicURL)
	require.Equal(t, "https://id.example.com/.well-known/jwks.json", cfg.JWKSURL)
	require.Equal(t, 5*time.Minute, cfg.JWKSRefreshInterval)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}
