package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway tolerates clock skew between the provider and this service.
const DefaultLeeway = 30 * time.Second

// Claims are the access-token claims issued by the OpenID provider.
// Providers disagree on how to carry scopes, so both the space-delimited
// "scope" string (RFC 9068) and a "scopes" array are accepted.
type Claims struct {
	jwt.RegisteredClaims

	Scope  string   `json:"scope,omitempty"`
	Scopes []string `json:"scopes,omitempty"`

	// Client the token was issued to.
	ClientID        string `json:"client_id,omitempty"`
	AuthorizedParty string `json:"azp,omitempty"`

	SID string `json:"sid,omitempty"`
}

// NewAccessClaims builds minimally-correct claims. Only used where this
// process mints its own tokens (tests and local tooling).
func NewAccessClaims(
	subject string,
	scopes []string,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Scope: strings.Join(scopes, " "),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ScopeList returns the union of "scope" and "scopes", de-duplicated and
// in first-seen order.
func (c Claims) ScopeList() []string {
	out := make([]string, 0, len(c.Scopes)+4)
	seen := make(map[string]struct{})
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range strings.Fields(c.Scope) {
		add(s)
	}
	for _, s := range c.Scopes {
		add(strings.TrimSpace(s))
	}
	return out
}

// HasScope reports whether scope was granted.
func (c Claims) HasScope(scope string) bool {
	return slices.Contains(c.ScopeList(), scope)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	// Providers are inconsistent about the trailing slash.
	if strings.TrimSuffix(c.Issuer, "/") != strings.TrimSuffix(expected, "/") {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired and isn't used before nbf,
// allowing leeway either side.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
