package directory_test

import (
	"testing"

	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness and readiness once the JWKS file is loaded.
func TestHealthEndpoints(t *testing.T) {
	_, baseURL := setupDirectoryContainer(t)
	client := directorysdk.NewClient(baseURL)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Keys)
}

// TestPublicDocuments verifies the scope catalogue and discovery fragment.
func TestPublicDocuments(t *testing.T) {
	_, baseURL := setupDirectoryContainer(t)
	client := directorysdk.NewClient(baseURL)

	scopes, err := client.ListScopes(t.Context())
	require.NoError(t, err)
	names := make([]string, 0, len(scopes))
	for _, s := range scopes {
		names = append(names, s.Name)
	}
	require.ElementsMatch(t, []string{"groups", "roles"}, names)

	doc, err := client.GetDiscovery(t.Context())
	require.NoError(t, err)
	require.Equal(t, testIssuer, doc.Issuer)
	require.Contains(t, doc.ScopesSupported, "groups")
	require.Contains(t, doc.ClaimsSupported, "roles")
}
