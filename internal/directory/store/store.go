package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrReference     = errors.New("store: referenced record does not exist")
)

// Store is the root data access interface. Drivers implement it and expose
// one sub-repository per entity. Repositories obtained from a Tx run inside
// that transaction.
type Store interface {
	Users() Users
	Groups() Groups
	Memberships() Memberships
	Responsibilities() Responsibilities
	Roles() Roles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Only use the Tx handed to fn inside it.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ListUsers orders by full name.
	ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error)

	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserProfile writes every profile field (names, email, locale,
	// phone, date of birth) and updated_at.
	UpdateUserProfile(ctx context.Context, u domain.User) error

	UpdateUserFlags(ctx context.Context, userID string, staff, active, superuser bool) error

	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// AnySuperuser reports whether at least one superuser exists.
	AnySuperuser(ctx context.Context) (bool, error)

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Groups interface {
	GetGroupByID(ctx context.Context, id string) (domain.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (domain.Group, error)

	// ListGroups orders by short name; search matches name, short name or slug.
	ListGroups(ctx context.Context, search string) ([]domain.Group, error)

	// ListGroupsForUser returns the groups the user is a member of, in
	// membership order.
	ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error)

	CreateGroup(ctx context.Context, g domain.Group) error
	UpdateGroup(ctx context.Context, g domain.Group) error

	// DeleteGroup cascades to memberships and their roles.
	DeleteGroup(ctx context.Context, id string) error
}

type Memberships interface {
	GetMembershipByID(ctx context.Context, id string) (domain.MembershipDetail, error)
	GetMembership(ctx context.Context, userID, groupID string) (domain.MembershipDetail, error)

	// ListMemberships orders by creation time.
	ListMemberships(ctx context.Context, f domain.MembershipFilter) ([]domain.MembershipDetail, error)

	// CreateMembership fails with ErrAlreadyExists for a repeated (user, group).
	CreateMembership(ctx context.Context, m domain.Membership) error

	// DeleteMembership cascades to roles.
	DeleteMembership(ctx context.Context, id string) error
}

type Responsibilities interface {
	GetResponsibilityByID(ctx context.Context, id string) (domain.Responsibility, error)
	GetResponsibilityBySlug(ctx context.Context, slug string) (domain.Responsibility, error)

	// ListResponsibilities orders available first, then by name.
	ListResponsibilities(ctx context.Context, f domain.ResponsibilityFilter) ([]domain.Responsibility, error)

	CreateResponsibility(ctx context.Context, r domain.Responsibility) error
	UpdateResponsibility(ctx context.Context, r domain.Responsibility) error

	// DeleteResponsibility cascades to roles.
	DeleteResponsibility(ctx context.Context, id string) error
}

type Roles interface {
	GetRoleByID(ctx context.Context, id string) (domain.RoleDetail, error)

	// ListRoles orders by creation time.
	ListRoles(ctx context.Context, f domain.RoleFilter) ([]domain.RoleDetail, error)

	// ListRolesForUser returns roles across all of the user's memberships.
	ListRolesForUser(ctx context.Context, userID string) ([]domain.RoleDetail, error)

	// CreateRole fails with ErrAlreadyExists for a repeated (membership, responsibility).
	CreateRole(ctx context.Context, r domain.Role) error

	DeleteRole(ctx context.Context, id string) error
}
