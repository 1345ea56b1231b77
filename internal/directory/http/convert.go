package http

import (
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/service"
	"github.com/aussiebroadwan/directory/pkg/cryptox"
	"github.com/aussiebroadwan/directory/pkg/directorysdk"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(time.DateOnly)
}

// parseDate reads an optional YYYY-MM-DD value for field.
func parseDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, service.NewFieldError(field, "must be a date such as 1990-12-31")
	}
	return &d, nil
}

func toUser(u domain.User) directorysdk.User {
	return directorysdk.User{
		ID:            u.ID,
		Email:         u.Email,
		GivenName:     u.GivenName,
		MiddleName:    u.MiddleName,
		FamilyName:    u.FamilyName,
		FullName:      u.FullName,
		PreferredName: u.PreferredName,
		Locale:        u.Locale,
		PhoneNumber:   u.PhoneNumber,
		DateOfBirth:   formatDate(u.DateOfBirth),
		HasPassword:   cryptox.IsUsable(u.PasswordHash),
		IsStaff:       u.IsStaff,
		IsActive:      u.IsActive,
		IsSuperuser:   u.IsSuperuser,
		CreatedAt:     formatTime(u.CreatedAt),
		UpdatedAt:     formatTime(u.UpdatedAt),
	}
}

func toGroup(g domain.Group) directorysdk.Group {
	return directorysdk.Group{
		ID:        g.ID,
		Name:      g.Name,
		ShortName: g.ShortName,
		Slug:      g.Slug,
		CreatedAt: formatTime(g.CreatedAt),
		UpdatedAt: formatTime(g.UpdatedAt),
	}
}

func toMembership(m domain.MembershipDetail) directorysdk.Membership {
	return directorysdk.Membership{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.User.FullName,
		GroupID:   m.GroupID,
		GroupSlug: m.Group.Slug,
		GroupName: m.Group.ShortName,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func toResponsibility(r domain.Responsibility) directorysdk.Responsibility {
	return directorysdk.Responsibility{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Slug:        r.Slug,
		IsAvailable: r.IsAvailable,
		CreatedAt:   formatTime(r.CreatedAt),
		UpdatedAt:   formatTime(r.UpdatedAt),
	}
}

func toRole(r domain.RoleDetail) directorysdk.Role {
	return directorysdk.Role{
		ID:                 r.ID,
		MembershipID:       r.MembershipID,
		UserID:             r.User.ID,
		UserName:           r.User.FullName,
		GroupID:            r.Group.ID,
		GroupSlug:          r.Group.Slug,
		GroupName:          r.Group.ShortName,
		ResponsibilityID:   r.ResponsibilityID,
		Responsibility:     r.Responsibility.Slug,
		ResponsibilityName: r.Responsibility.Name,
		CreatedAt:          formatTime(r.CreatedAt),
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

// set overwrites *dst when src is present.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
