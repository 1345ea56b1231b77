package service

import (
	"context"
	"slices"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
)

// Claims is a set of OpenID Connect claims keyed by claim name.
type Claims map[string]any

// Scope names.
const (
	ScopeOpenID  = "openid"
	ScopeProfile = "profile"
	ScopeEmail   = "email"
	ScopeGroups  = "groups"
	ScopeRoles   = "roles"
)

// ScopeInfo describes a scope for consent screens.
type ScopeInfo struct {
	Name        string
	Title       string
	Description string
}

// ExtensionScopes are the scopes this directory adds on top of OpenID Connect.
var ExtensionScopes = []ScopeInfo{
	{
		Name:        ScopeGroups,
		Title:       "Groups",
		Description: "Access to the list of groups of which you're a member.",
	},
	{
		Name:        ScopeRoles,
		Title:       "Roles",
		Description: "Access to your current group roles.",
	},
}

// SupportedScopes lists every scope Claims understands.
func SupportedScopes() []string {
	out := []string{ScopeOpenID, ScopeProfile, ScopeEmail}
	for _, s := range ExtensionScopes {
		out = append(out, s.Name)
	}
	return out
}

var (
	profileClaims = []string{"given_name", "family_name", "name", "nickname", "locale", "updated_at", "birthdate"}
	emailClaims   = []string{"email", "email_verified"}
)

// SupportedClaims lists every claim Claims can release.
func SupportedClaims() []string {
	out := []string{"sub"}
	out = append(out, profileClaims...)
	out = append(out, emailClaims...)
	return append(out, ScopeGroups, ScopeRoles)
}

// OpenIDUserInfo adds the user's standard claims to claims and returns it.
// birthdate is only present when a date of birth is recorded.
func OpenIDUserInfo(claims Claims, user domain.User) Claims {
	if claims == nil {
		claims = Claims{}
	}

	claims["given_name"] = user.GivenName
	claims["family_name"] = user.FamilyName
	claims["name"] = user.FullName
	claims["nickname"] = user.PreferredName
	claims["email"] = user.Email
	claims["email_verified"] = false // addresses are not verified
	claims["locale"] = user.Locale
	claims["updated_at"] = user.UpdatedAt.UTC().Format(time.RFC3339)

	if user.DateOfBirth != nil {
		claims["birthdate"] = user.DateOfBirth.Format(time.DateOnly)
	}
	return claims
}

// GroupClaim is the published form of a group.
type GroupClaim struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Slug      string `json:"slug"`
}

// RoleClaim is the published form of a role.
type RoleClaim struct {
	ID                 string `json:"id"`
	Group              string `json:"group"`
	GroupName          string `json:"group_name"`
	Responsibility     string `json:"responsibility"`
	ResponsibilityName string `json:"responsibility_name"`
	CreatedAt          string `json:"created_at"`
}

func groupClaim(g domain.Group) GroupClaim {
	return GroupClaim{ID: g.ID, Name: g.Name, ShortName: g.ShortName, Slug: g.Slug}
}

func roleClaim(r domain.RoleDetail) RoleClaim {
	return RoleClaim{
		ID:                 r.ID,
		Group:              r.Group.Slug,
		GroupName:          r.Group.ShortName,
		Responsibility:     r.Responsibility.Slug,
		ResponsibilityName: r.Responsibility.Name,
		CreatedAt:          r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ClaimsService renders directory records as OpenID Connect claims.
type ClaimsService struct {
	Store store.Store
}

// ScopeGroups returns {"groups": [...]} with every group the user is a member of.
func (s *ClaimsService) ScopeGroups(ctx context.Context, user domain.User) (Claims, error) {
	groups, err := s.Store.Groups().ListGroupsForUser(ctx, user.ID)
	if err != nil {
		return nil, mapStoreErr(err, "groups for "+user.ID, nil)
	}

	out := make([]GroupClaim, len(groups))
	for i, g := range groups {
		out[i] = groupClaim(g)
	}
	return Claims{"groups": out}, nil
}

// ScopeRoles returns {"roles": [...]} with every role the user holds in any group.
func (s *ClaimsService) ScopeRoles(ctx context.Context, user domain.User) (Claims, error) {
	roles, err := s.Store.Roles().ListRolesForUser(ctx, user.ID)
	if err != nil {
		return nil, mapStoreErr(err, "roles for "+user.ID, nil)
	}

	out := make([]RoleClaim, len(roles))
	for i, r := range roles {
		out[i] = roleClaim(r)
	}
	return Claims{"roles": out}, nil
}

// Claims builds the UserInfo response for the granted scopes. sub is always
// present. Profile and email claims follow the standard OpenID Connect
// scopes, and groups and roles are released by their own scopes.
func (s *ClaimsService) Claims(ctx context.Context, user domain.User, scopes []string) (Claims, error) {
	std := OpenIDUserInfo(Claims{}, user)

	out := Claims{"sub": user.ID}
	if slices.Contains(scopes, ScopeProfile) {
		copyClaims(out, std, profileClaims)
	}
	if slices.Contains(scopes, ScopeEmail) {
		copyClaims(out, std, emailClaims)
	}

	if slices.Contains(scopes, ScopeGroups) {
		groups, err := s.ScopeGroups(ctx, user)
		if err != nil {
			return nil, err
		}
		copyClaims(out, groups, []string{"groups"})
	}
	if slices.Contains(scopes, ScopeRoles) {
		roles, err := s.ScopeRoles(ctx, user)
		if err != nil {
			return nil, err
		}
		copyClaims(out, roles, []string{"roles"})
	}
	return out, nil
}

func copyClaims(dst, src Claims, names []string) {
	for _, n := range names {
		if v, ok := src[n]; ok {
			dst[n] = v
		}
	}
}
