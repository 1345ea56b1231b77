package gen

import (
	"database/sql"
	"strings"
	"time"
)

type User struct {
	ID            string
	Email         string
	GivenName     string
	MiddleName    string
	FamilyName    string
	FullName      string
	PreferredName string
	Locale        string
	PhoneNumber   string
	DateOfBirth   sql.NullString
	PasswordHash  string
	IsStaff       bool
	IsActive      bool
	IsSuperuser   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (u *User) dest() []any {
	return []any{
		&u.ID, &u.Email, &u.GivenName, &u.MiddleName, &u.FamilyName, &u.FullName,
		&u.PreferredName, &u.Locale, &u.PhoneNumber, &u.DateOfBirth, &u.PasswordHash,
		&u.IsStaff, &u.IsActive, &u.IsSuperuser, &u.CreatedAt, &u.UpdatedAt,
	}
}

type UserGroup struct {
	ID        string
	Name      string
	ShortName string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (g *UserGroup) dest() []any {
	return []any{&g.ID, &g.Name, &g.ShortName, &g.Slug, &g.CreatedAt, &g.UpdatedAt}
}

type Membership struct {
	ID        string
	UserID    string
	GroupID   string
	CreatedAt time.Time
}

func (m *Membership) dest() []any {
	return []any{&m.ID, &m.UserID, &m.GroupID, &m.CreatedAt}
}

type Responsibility struct {
	ID          string
	Name        string
	Description string
	Slug        string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *Responsibility) dest() []any {
	return []any{&r.ID, &r.Name, &r.Description, &r.Slug, &r.IsAvailable, &r.CreatedAt, &r.UpdatedAt}
}

type Role struct {
	ID               string
	MembershipID     string
	ResponsibilityID string
	CreatedAt        time.Time
}

func (r *Role) dest() []any {
	return []any{&r.ID, &r.MembershipID, &r.ResponsibilityID, &r.CreatedAt}
}

const (
	userColumns = `id, email, given_name, middle_name, family_name, full_name, preferred_name,
    locale, phone_number, date_of_birth, password_hash, is_staff, is_active, is_superuser,
    created_at, updated_at`
	groupColumns          = `id, name, short_name, slug, created_at, updated_at`
	responsibilityColumns = `id, name, description, slug, is_available, created_at, updated_at`
)

const (
	membershipColumns = `id, user_id, group_id, created_at`
	roleColumns       = `id, membership_id, responsibility_id, created_at`
)

// qualify prefixes each column in cols with alias.
func qualify(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func concat(groups ...[]any) []any {
	var out []any
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
