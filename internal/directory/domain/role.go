package domain

import "time"

// Role grants a responsibility to a membership: this user, in this group,
// holds this responsibility. A (membership, responsibility) pair appears at most once.
type Role struct {
	ID               string
	MembershipID     string
	ResponsibilityID string
	CreatedAt        time.Time
}

// RoleDetail is a role joined with everything it refers to.
type RoleDetail struct {
	Role
	User           User
	Group          Group
	Responsibility Responsibility
}

func (r RoleDetail) String() string {
	return r.User.FullName + ", " + r.Responsibility.Name + " of " + r.Group.ShortName
}

// RoleFilter narrows ListRoles.
type RoleFilter struct {
	UserID           string
	GroupID          string
	ResponsibilityID string
	Search           string // group names, user full or preferred name, responsibility name
}
