package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewServesHealthProbes(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		Issuer:              "https://id.example.com",
		PublicURL:           "http://localhost:8080",
		JWKSFile:            writeJWKSFile(t, testJWKS(t)),
		DatabaseFile:        filepath.Join(dir, "directory.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	}

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/userinfo", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewRequiresKeySource(t *testing.T) {
	dir := t.TempDir()
	_, err := New(Config{
		DatabaseFile: filepath.Join(dir, "directory.db"),
		PepperFile:   filepath.Join(dir, "pepper"),
		LogLevel:     "error",
	})
	require.ErrorIs(t, err, ErrNoKeySource)
}
