package domain

import "time"

// Group is a collection of users, such as a team or committee.
type Group struct {
	ID        string
	Name      string
	ShortName string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g Group) String() string { return g.ShortName }
