package directorysdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// ListScopes returns the scopes the directory releases claims for.
func (c *Client) ListScopes(ctx context.Context) ([]ScopeInfo, error) {
	var out ListScopesResponse
	if err := c.call(ctx, http.MethodGet, "/v1/scopes", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Scopes, nil
}

// GetDiscovery fetches the directory's OpenID configuration fragment.
func (c *Client) GetDiscovery(ctx context.Context) (*DiscoveryResponse, error) {
	var out DiscoveryResponse
	err := c.call(ctx, http.MethodGet, "/.well-known/openid-configuration", nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCredentials checks an email and password pair and returns the user ID.
func (c *Client) VerifyCredentials(ctx context.Context, email, password string) (string, error) {
	var out VerifyCredentialsResponse
	req := VerifyCredentialsRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/v1/credentials/verify", nil, req, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.UserID, nil
}

// GetUserInfo returns the claims released to the client's token.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfoResponse, error) {
	var out UserInfoResponse
	if err := c.call(ctx, http.MethodGet, "/v1/userinfo", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
