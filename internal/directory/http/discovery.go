package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
	"github.com/aussiebroadwan/directory/pkg/httpx"
)

// ScopesHandler godoc
//
//	@Summary		List scopes
//	@Description	Returns the scopes this directory adds on top of OpenID Connect, with titles and
//	@Description	descriptions for consent screens.
//	@Tags			OpenID
//	@Produce		json
//	@Success		200	{object}	directorysdk.ListScopesResponse	"Scope catalogue"
//	@Router			/v1/scopes [get].
func ScopesHandler() http.HandlerFunc {
	resp := directorysdk.ListScopesResponse{
		Scopes: make([]directorysdk.ScopeInfo, len(service.ExtensionScopes)),
	}
	for i, s := range service.ExtensionScopes {
		resp.Scopes[i] = directorysdk.ScopeInfo{Name: s.Name, Title: s.Title, Description: s.Description}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

// DiscoveryHandler godoc
//
//	@Summary		OpenID configuration fragment
//	@Description	Returns the issuer, UserInfo endpoint and the scopes and claims the directory supports,
//	@Description	for merging into the identity provider's discovery document.
//	@Tags			OpenID
//	@Produce		json
//	@Success		200	{object}	directorysdk.DiscoveryResponse	"Discovery document"
//	@Router			/.well-known/openid-configuration [get].
func DiscoveryHandler(issuer, publicURL string) http.HandlerFunc {
	resp := directorysdk.DiscoveryResponse{
		Issuer:           issuer,
		UserInfoEndpoint: strings.TrimSuffix(publicURL, "/") + "/v1/userinfo",
		ScopesSupported:  service.SupportedScopes(),
		ClaimsSupported:  service.SupportedClaims(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
