package directorysdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Admin operations. The token subject must be an active staff user.

// ============================================================================
// Users
// ============================================================================

// UserQuery filters ListUsers. Zero values mean "any".
type UserQuery struct {
	Search string
	Locale string
	Active *bool
}

func (q UserQuery) values() url.Values {
	v := url.Values{}
	setString(v, "q", q.Search)
	setString(v, "locale", q.Locale)
	setBool(v, "active", q.Active)
	return v
}

func (c *Client) ListUsers(ctx context.Context, q UserQuery) ([]User, error) {
	var out ListUsersResponse
	if err := c.call(ctx, http.MethodGet, "/v1/users", q.values(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodPost, "/v1/users", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(id), nil, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateUser clears the user's active flag.
func (c *Client) DeactivateUser(ctx context.Context, id string) (*User, error) {
	var out User
	path := "/v1/users/" + url.PathEscape(id) + "/deactivate"
	if err := c.call(ctx, http.MethodPost, path, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetPassword(ctx context.Context, id, password string) error {
	path := "/v1/users/" + url.PathEscape(id) + "/password"
	return c.call(ctx, http.MethodPut, path, nil, SetPasswordRequest{Password: password}, nil, http.StatusNoContent)
}

// ============================================================================
// Groups
// ============================================================================

func (c *Client) ListGroups(ctx context.Context, search string) ([]Group, error) {
	v := url.Values{}
	setString(v, "q", search)

	var out ListGroupsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/groups", v, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

func (c *Client) GetGroup(ctx context.Context, id string) (*Group, error) {
	var out Group
	if err := c.call(ctx, http.MethodGet, "/v1/groups/"+url.PathEscape(id), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGroup(ctx context.Context, req GroupRequest) (*Group, error) {
	var out Group
	if err := c.call(ctx, http.MethodPost, "/v1/groups", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, req UpdateGroupRequest) (*Group, error) {
	var out Group
	if err := c.call(ctx, http.MethodPatch, "/v1/groups/"+url.PathEscape(id), nil, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteGroup removes the group with its memberships and roles.
func (c *Client) DeleteGroup(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/groups/"+url.PathEscape(id), nil, nil, nil, http.StatusNoContent)
}

// ============================================================================
// Memberships
// ============================================================================

// MembershipQuery filters ListMemberships.
type MembershipQuery struct {
	Search  string
	UserID  string
	GroupID string
}

func (c *Client) ListMemberships(ctx context.Context, q MembershipQuery) ([]Membership, error) {
	v := url.Values{}
	setString(v, "q", q.Search)
	setString(v, "user_id", q.UserID)
	setString(v, "group_id", q.GroupID)

	var out ListMembershipsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/memberships", v, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Memberships, nil
}

func (c *Client) GetMembership(ctx context.Context, id string) (*Membership, error) {
	var out Membership
	err := c.call(ctx, http.MethodGet, "/v1/memberships/"+url.PathEscape(id), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddMembership(ctx context.Context, userID, groupID string) (*Membership, error) {
	var out Membership
	req := MembershipRequest{UserID: userID, GroupID: groupID}
	if err := c.call(ctx, http.MethodPost, "/v1/memberships", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveMembership(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/memberships/"+url.PathEscape(id), nil, nil, nil, http.StatusNoContent)
}

// ============================================================================
// Responsibilities
// ============================================================================

// ResponsibilityQuery filters ListResponsibilities.
type ResponsibilityQuery struct {
	Search    string
	Available *bool
}

func (c *Client) ListResponsibilities(ctx context.Context, q ResponsibilityQuery) ([]Responsibility, error) {
	v := url.Values{}
	setString(v, "q", q.Search)
	setBool(v, "available", q.Available)

	var out ListResponsibilitiesResponse
	if err := c.call(ctx, http.MethodGet, "/v1/responsibilities", v, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Responsibilities, nil
}

func (c *Client) GetResponsibility(ctx context.Context, id string) (*Responsibility, error) {
	var out Responsibility
	err := c.call(ctx, http.MethodGet, "/v1/responsibilities/"+url.PathEscape(id), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateResponsibility(ctx context.Context, req ResponsibilityRequest) (*Responsibility, error) {
	var out Responsibility
	if err := c.call(ctx, http.MethodPost, "/v1/responsibilities", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResponsibility(
	ctx context.Context,
	id string,
	req UpdateResponsibilityRequest,
) (*Responsibility, error) {
	var out Responsibility
	err := c.call(ctx, http.MethodPatch, "/v1/responsibilities/"+url.PathEscape(id), nil, req, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResponsibility(ctx context.Context, id string) error {
	path := "/v1/responsibilities/" + url.PathEscape(id)
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil, http.StatusNoContent)
}

// ============================================================================
// Roles
// ============================================================================

// RoleQuery filters ListRoles.
type RoleQuery struct {
	Search           string
	UserID           string
	GroupID          string
	ResponsibilityID string
}

func (c *Client) ListRoles(ctx context.Context, q RoleQuery) ([]Role, error) {
	v := url.Values{}
	setString(v, "q", q.Search)
	setString(v, "user_id", q.UserID)
	setString(v, "group_id", q.GroupID)
	setString(v, "responsibility_id", q.ResponsibilityID)

	var out ListRolesResponse
	if err := c.call(ctx, http.MethodGet, "/v1/roles", v, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

func (c *Client) GetRole(ctx context.Context, id string) (*Role, error) {
	var out Role
	if err := c.call(ctx, http.MethodGet, "/v1/roles/"+url.PathEscape(id), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssignRole grants a responsibility to a membership.
func (c *Client) AssignRole(ctx context.Context, membershipID, responsibilityID string) (*Role, error) {
	var out Role
	req := RoleRequest{MembershipID: membershipID, ResponsibilityID: responsibilityID}
	if err := c.call(ctx, http.MethodPost, "/v1/roles", nil, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RevokeRole(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/v1/roles/"+url.PathEscape(id), nil, nil, nil, http.StatusNoContent)
}

func setString(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setBool(v url.Values, key string, val *bool) {
	if val != nil {
		v.Set(key, strconv.FormatBool(*val))
	}
}
