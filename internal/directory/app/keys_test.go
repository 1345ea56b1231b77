package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/directory/pkg/cryptox"
	"github.com/aussiebroadwan/directory/pkg/jwtx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func testJWKS(t *testing.T) jwtx.JWKS {
	t.Helper()
	pem, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("test-key", pem)
	require.NoError(t, err)
	return jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}}
}

func writeJWKSFile(t *testing.T, set jwtx.JWKS) string {
	t.Helper()
	data, err := json.Marshal(set)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "jwks.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestInitKeys(t *testing.T) {
	ctx := context.Background()
	logger := slogx.Discard()

	t.Run("no source configured", func(t *testing.T) {
		_, _, err := InitKeys(ctx, Config{}, logger)
		require.ErrorIs(t, err, ErrNoKeySource)
	})

	t.Run("file", func(t *testing.T) {
		path := writeJWKSFile(t, testJWKS(t))

		keys, fetcher, err := InitKeys(ctx, Config{JWKSFile: path}, logger)
		require.NoError(t, err)
		require.Nil(t, fetcher)
		require.True(t, keys.IsReady())

		_, err = keys.Get("test-key")
		require.NoError(t, err)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		path := writeJWKSFile(t, jwtx.JWKS{Keys: []jwtx.JWK{}})
		_, _, err := InitKeys(ctx, Config{JWKSFile: path}, logger)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := InitKeys(ctx, Config{JWKSFile: filepath.Join(t.TempDir(), "nope.json")}, logger)
		require.Error(t, err)
	})

	t.Run("url", func(t *testing.T) {
		set := testJWKS(t)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(set)
		}))
		defer srv.Close()

		keys, fetcher, err := InitKeys(ctx, Config{JWKSURL: srv.URL}, logger)
		require.NoError(t, err)
		require.NotNil(t, fetcher)
		require.True(t, keys.IsReady())
	})

	t.Run("unreachable url still starts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		keys, fetcher, err := InitKeys(ctx, Config{JWKSURL: srv.URL}, logger)
		require.NoError(t, err)
		require.NotNil(t, fetcher)
		require.False(t, keys.IsReady())
	})
}
