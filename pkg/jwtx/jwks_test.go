package jwtx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/directory/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestParseJWKSDropsEncryptionKeys(t *testing.T) {
	signer := newSigner(t, "EdDSA", "sig-key")
	enc := signer.PublicJWK()
	enc.Kid, enc.Use = "enc-key", "enc"

	data, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK(), enc}})
	require.NoError(t, err)

	set, err := jwtx.ParseJWKS(data)
	require.NoError(t, err)
	require.Len(t, set.Keys, 1)
	require.Equal(t, "sig-key", set.Keys[0].Kid)
}

func TestLoadJWKSFile(t *testing.T) {
	signer := newSigner(t, "ES256", "file-key")
	data, err := json.Marshal(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "jwks.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	set, err := jwtx.LoadJWKSFile(path)
	require.NoError(t, err)

	keys := jwtx.NewKeySet()
	require.False(t, keys.IsReady())
	require.NoError(t, keys.ResetFromJWKS(set))
	require.True(t, keys.IsReady())

	_, err = keys.Get("file-key")
	require.NoError(t, err)
	_, err = keys.Get("missing")
	require.ErrorIs(t, err, jwtx.ErrNoKey)
}

func TestKeySetAddJWKReplacesSameKid(t *testing.T) {
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(newSigner(t, "EdDSA", "k1")))
	require.NoError(t, keys.AddSigner(newSigner(t, "ES256", "k1")))

	require.Equal(t, 1, keys.Len())
	require.Len(t, keys.PublicJWKS().Keys, 1)
	require.Equal(t, "EC", keys.PublicJWKS().Keys[0].Kty)
}

func TestResetFromJWKSKeepsOldKeysOnError(t *testing.T) {
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(newSigner(t, "EdDSA", "k1")))

	err := keys.ResetFromJWKS(jwtx.JWKS{Keys: []jwtx.JWK{{Kty: "oct", Kid: "bad"}}})
	require.Error(t, err)

	_, err = keys.Get("k1")
	require.NoError(t, err)
}

func TestFetcherRefresh(t *testing.T) {
	signer := newSigner(t, "RS256", "remote")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwtx.JWKS{Keys: []jwtx.JWK{signer.PublicJWK()}})
	}))
	defer srv.Close()

	keys := jwtx.NewKeySet()
	f := jwtx.NewFetcher(srv.URL, keys, nil)
	require.NoError(t, f.Refresh(context.Background()))

	tok, err := signer.Sign(jwtx.NewAccessClaims("u", []string{"openid"}, time.Minute, testIssuer, nil, time.Now()))
	require.NoError(t, err)
	_, err = jwtx.NewVerifier(keys, jwtx.VerifyOptions{Issuer: testIssuer}).Verify(tok)
	require.NoError(t, err)
}

func TestFetcherRefreshErrors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		require.Error(t, jwtx.NewFetcher(srv.URL, jwtx.NewKeySet(), nil).Refresh(context.Background()))
	})

	t.Run("empty set", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"keys":[]}`))
		}))
		defer srv.Close()

		require.Error(t, jwtx.NewFetcher(srv.URL, jwtx.NewKeySet(), nil).Refresh(context.Background()))
	})
}
