package domain

import "time"

// User is a person who can sign in through the identity provider. Email is
// the login key and is stored normalized. Users are deactivated, never deleted.
type User struct {
	ID            string
	Email         string
	GivenName     string
	MiddleName    string // optional
	FamilyName    string
	FullName      string
	PreferredName string
	Locale        string
	PhoneNumber   string     // optional, E.164
	DateOfBirth   *time.Time // optional, date only
	PasswordHash  string     // argon2id PHC string, or cryptox.UnusablePassword
	IsStaff       bool
	IsActive      bool
	IsSuperuser   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ShortName is the name used in greetings.
func (u User) ShortName() string { return u.GivenName }

func (u User) String() string { return u.FullName }

// UserFilter narrows ListUsers. Zero values mean "any".
type UserFilter struct {
	Search string // full name, email or preferred name
	Locale string
	Active *bool
}
