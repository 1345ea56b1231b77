package directorysdk

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	// Error is the error code (e.g., "not_found", "conflict")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request fields fail validation.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific validation errors (field name: error message)
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Claims Types
// ============================================================================

// UserInfoResponse is the UserInfo endpoint response. Only sub is always
// present; the rest depends on the token's scopes.
type UserInfoResponse struct {
	Subject       string       `json:"sub"`
	GivenName     string       `json:"given_name,omitempty"`
	FamilyName    string       `json:"family_name,omitempty"`
	Name          string       `json:"name,omitempty"`
	Nickname      string       `json:"nickname,omitempty"`
	Email         string       `json:"email,omitempty"`
	EmailVerified bool         `json:"email_verified,omitempty"`
	Locale        string       `json:"locale,omitempty"`
	UpdatedAt     string       `json:"updated_at,omitempty"`
	Birthdate     string       `json:"birthdate,omitempty"`
	Groups        []GroupClaim `json:"groups,omitempty"`
	Roles         []RoleClaim  `json:"roles,omitempty"`
}

// GroupClaim is one entry of the "groups" claim.
type GroupClaim struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Slug      string `json:"slug"`
}

// RoleClaim is one entry of the "roles" claim.
type RoleClaim struct {
	ID                 string `json:"id"`
	Group              string `json:"group"`
	GroupName          string `json:"group_name"`
	Responsibility     string `json:"responsibility"`
	ResponsibilityName string `json:"responsibility_name"`
	CreatedAt          string `json:"created_at"`
}

// ScopeInfo describes a scope the directory releases claims for.
type ScopeInfo struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ListScopesResponse contains the scope catalogue.
type ListScopesResponse struct {
	Scopes []ScopeInfo `json:"scopes"`
}

// DiscoveryResponse is the directory's fragment of an OpenID Provider
// configuration document.
type DiscoveryResponse struct {
	Issuer           string   `json:"issuer"`
	UserInfoEndpoint string   `json:"userinfo_endpoint"`
	ScopesSupported  []string `json:"scopes_supported"`
	ClaimsSupported  []string `json:"claims_supported"`
}

// VerifyCredentialsRequest is a login form submission relayed by the identity provider.
type VerifyCredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyCredentialsResponse names the user the credentials belong to.
type VerifyCredentialsResponse struct {
	UserID string `json:"user_id"`
}

// ============================================================================
// User Types
// ============================================================================

// User is a directory account. Timestamps are RFC 3339, date_of_birth is YYYY-MM-DD.
type User struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	GivenName     string `json:"given_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	FamilyName    string `json:"family_name"`
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	Locale        string `json:"locale"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	HasPassword   bool   `json:"has_password"`
	IsStaff       bool   `json:"is_staff"`
	IsActive      bool   `json:"is_active"`
	IsSuperuser   bool   `json:"is_superuser"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// ListUsersResponse contains the users matching a query.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// CreateUserRequest creates a user. An empty password leaves the account
// without a usable password.
type CreateUserRequest struct {
	Email         string `json:"email"`
	GivenName     string `json:"given_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	FamilyName    string `json:"family_name"`
	FullName      string `json:"full_name"`
	PreferredName string `json:"preferred_name"`
	Locale        string `json:"locale"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	DateOfBirth   string `json:"date_of_birth,omitempty"`
	Password      string `json:"password,omitempty"`
	IsStaff       bool   `json:"is_staff,omitempty"`
	IsSuperuser   bool   `json:"is_superuser,omitempty"`
}

// UpdateUserRequest changes the fields that are set. An empty date_of_birth
// clears it. Flag changes require a superuser caller.
type UpdateUserRequest struct {
	Email         *string `json:"email,omitempty"`
	GivenName     *string `json:"given_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	FamilyName    *string `json:"family_name,omitempty"`
	FullName      *string `json:"full_name,omitempty"`
	PreferredName *string `json:"preferred_name,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	IsStaff       *bool   `json:"is_staff,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
	IsSuperuser   *bool   `json:"is_superuser,omitempty"`
}

// SetPasswordRequest replaces a user's password. An empty password makes it unusable.
type SetPasswordRequest struct {
	Password string `json:"password"`
}

// ============================================================================
// Group Types
// ============================================================================

type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

// GroupRequest creates a group.
type GroupRequest struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Slug      string `json:"slug"`
}

// UpdateGroupRequest changes the fields that are set.
type UpdateGroupRequest struct {
	Name      *string `json:"name,omitempty"`
	ShortName *string `json:"short_name,omitempty"`
	Slug      *string `json:"slug,omitempty"`
}

// ============================================================================
// Membership Types
// ============================================================================

type Membership struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	GroupID   string `json:"group_id"`
	GroupSlug string `json:"group_slug"`
	GroupName string `json:"group_name"`
	CreatedAt string `json:"created_at"`
}

type ListMembershipsResponse struct {
	Memberships []Membership `json:"memberships"`
}

type MembershipRequest struct {
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
}

// ============================================================================
// Responsibility Types
// ============================================================================

type Responsibility struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsAvailable bool   `json:"is_available"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ListResponsibilitiesResponse struct {
	Responsibilities []Responsibility `json:"responsibilities"`
}

// ResponsibilityRequest creates a responsibility. is_available defaults to true.
type ResponsibilityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

// UpdateResponsibilityRequest changes the fields that are set.
type UpdateResponsibilityRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// ============================================================================
// Role Types
// ============================================================================

type Role struct {
	ID                 string `json:"id"`
	MembershipID       string `json:"membership_id"`
	UserID             string `json:"user_id"`
	UserName           string `json:"user_name"`
	GroupID            string `json:"group_id"`
	GroupSlug          string `json:"group_slug"`
	GroupName          string `json:"group_name"`
	ResponsibilityID   string `json:"responsibility_id"`
	Responsibility     string `json:"responsibility"`
	ResponsibilityName string `json:"responsibility_name"`
	CreatedAt          string `json:"created_at"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

type RoleRequest struct {
	MembershipID     string `json:"membership_id"`
	ResponsibilityID string `json:"responsibility_id"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency in /readyz.
type HealthChecks struct {
	// Database is "ok" or the ping error
	Database string `json:"database"`

	// Keys is "ok" once the identity provider's signing keys are loaded
	Keys string `json:"keys"`
}
