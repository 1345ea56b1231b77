package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestUserInfo(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	r := env.router

	g, err := r.GroupService.Create(ctx, groupInput("band", "Band"))
	require.NoError(t, err)
	m, err := r.MembershipService.Add(ctx, env.member.ID, g.ID)
	require.NoError(t, err)
	lead, err := r.ResponsibilityService.Create(ctx, responsibilityInput("leader", "Leader"))
	require.NoError(t, err)
	role, err := r.RoleService.Assign(ctx, m.ID, lead.ID)
	require.NoError(t, err)

	t.Run("all scopes", func(t *testing.T) {
		tok := env.token(t, env.member.ID, "openid", "profile", "email", "groups", "roles")
		info := decode[directorysdk.UserInfoResponse](t, env.do(t, http.MethodGet, "/v1/userinfo", tok, nil), http.StatusOK)

		require.Equal(t, env.member.ID, info.Subject)
		require.Equal(t, "Member Person", info.Name)
		require.Equal(t, "member@example.com", info.Email)
		require.Equal(t, "en_AU", info.Locale)
		require.NotEmpty(t, info.UpdatedAt)
		require.Empty(t, info.Birthdate)
		require.Equal(t, []directorysdk.GroupClaim{{ID: g.ID, Name: g.Name, ShortName: "Band", Slug: "band"}}, info.Groups)
		require.Len(t, info.Roles, 1)
		require.Equal(t, role.ID, info.Roles[0].ID)
		require.Equal(t, "band", info.Roles[0].Group)
		require.Equal(t, "leader", info.Roles[0].Responsibility)
	})

	t.Run("openid only", func(t *testing.T) {
		tok := env.token(t, env.member.ID, "openid")
		rec := env.do(t, http.MethodGet, "/v1/userinfo", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"sub":"`+env.member.ID+`"}`, rec.Body.String())
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("requires openid scope", func(t *testing.T) {
		tok := env.token(t, env.member.ID, "profile")
		rec := env.do(t, http.MethodGet, "/v1/userinfo", tok, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
	})

	t.Run("missing token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/v1/userinfo", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown subject", func(t *testing.T) {
		tok := env.token(t, "01HZZZZZZZZZZZZZZZZZZZZZZZ", "openid")
		rec := env.do(t, http.MethodGet, "/v1/userinfo", tok, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := r.UserService.Deactivate(ctx, env.member.ID)
		require.NoError(t, err)

		tok := env.token(t, env.member.ID, "openid")
		rec := env.do(t, http.MethodGet, "/v1/userinfo", tok, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCredentialsVerify(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/credentials/verify", "", directorysdk.VerifyCredentialsRequest{
		Email:    "MEMBER@example.com",
		Password: "password for member@example.com",
	})
	out := decode[directorysdk.VerifyCredentialsResponse](t, rec, http.StatusOK)
	require.Equal(t, env.member.ID, out.UserID)

	rec = env.do(t, http.MethodPost, "/v1/credentials/verify", "", directorysdk.VerifyCredentialsRequest{
		Email:    "member@example.com",
		Password: "wrong",
	})
	errResp := decode[directorysdk.ErrorResponse](t, rec, http.StatusUnauthorized)
	require.Equal(t, directorysdk.ErrorCodeInvalidGrant, errResp.Error)

	rec = env.do(t, http.MethodPost, "/v1/credentials/verify", "", map[string]any{"email": "x", "extra": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScopesAndDiscovery(t *testing.T) {
	env := newTestEnv(t)

	scopes := decode[directorysdk.ListScopesResponse](t, env.do(t, http.MethodGet, "/v1/scopes", "", nil), http.StatusOK)
	require.Equal(t, []directorysdk.ScopeInfo{
		{Name: "groups", Title: "Groups", Description: "Access to the list of groups of which you're a member."},
		{Name: "roles", Title: "Roles", Description: "Access to your current group roles."},
	}, scopes.Scopes)

	rec := env.do(t, http.MethodGet, "/.well-known/openid-configuration", "", nil)
	doc := decode[directorysdk.DiscoveryResponse](t, rec, http.StatusOK)
	require.Equal(t, testIssuer, doc.Issuer)
	require.Equal(t, testURL+"/v1/userinfo", doc.UserInfoEndpoint)
	require.Contains(t, doc.ScopesSupported, "groups")
	require.Contains(t, doc.ClaimsSupported, "roles")
	require.Contains(t, doc.ClaimsSupported, "birthdate")
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	live := decode[directorysdk.HealthResponse](t, env.do(t, http.MethodGet, "/livez", "", nil), http.StatusOK)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready := decode[directorysdk.HealthResponse](t, env.do(t, http.MethodGet, "/readyz", "", nil), http.StatusOK)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Keys)

	require.NoError(t, env.keys.ResetFromJWKS(jwtx.JWKS{}))
	rec := env.do(t, http.MethodGet, "/readyz", "", nil)
	notReady := decode[directorysdk.HealthResponse](t, rec, http.StatusServiceUnavailable)
	require.Equal(t, "degraded", notReady.Status)
	require.Equal(t, "ok", notReady.Checks.Database)
}
