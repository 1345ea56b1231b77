package domain

import "time"

// Responsibility is a duty that can be held within a group, such as
// "treasurer". Unavailable responsibilities keep their existing roles but
// cannot be newly assigned.
type Responsibility struct {
	ID          string
	Name        string
	Description string
	Slug        string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r Responsibility) String() string { return r.Name }

// ResponsibilityFilter narrows ListResponsibilities.
type ResponsibilityFilter struct {
	Search    string // name, description or slug
	Available *bool
}
