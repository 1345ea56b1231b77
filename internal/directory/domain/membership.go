package domain

import "time"

// Membership places a user in a group. A (user, group) pair appears at most once.
type Membership struct {
	ID        string
	UserID    string
	GroupID   string
	CreatedAt time.Time
}

// MembershipDetail is a membership joined with its user and group.
type MembershipDetail struct {
	Membership
	User  User
	Group Group
}

func (m MembershipDetail) String() string {
	return m.User.FullName + ", " + m.Group.ShortName
}

// MembershipFilter narrows ListMemberships.
type MembershipFilter struct {
	UserID  string
	GroupID string
	Search  string // group name or short name, user full or preferred name
}
