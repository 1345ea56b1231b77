package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestUserServiceCreate(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	t.Run("normalizes and activates", func(t *testing.T) {
		in := newUserInput("  Alice@Example.COM ", " Alice Smith ")
		in.Password = "correct horse battery"
		dob := time.Date(1990, time.March, 4, 13, 30, 0, 0, time.FixedZone("AEST", 10*3600))
		in.DateOfBirth = &dob

		u, err := s.users.Create(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.Equal(t, "alice@example.com", u.Email)
		require.Equal(t, "Alice Smith", u.FullName)
		require.True(t, u.IsActive)
		require.False(t, u.IsStaff)
		require.True(t, cryptox.IsUsable(u.PasswordHash))
		require.NotNil(t, u.DateOfBirth)
		require.Equal(t, "1990-03-04", u.DateOfBirth.Format(time.DateOnly))
		require.False(t, u.UpdatedAt.IsZero())
	})

	t.Run("duplicate email differing only in case", func(t *testing.T) {
		_, err := s.users.Create(ctx, newUserInput("ALICE@example.com", "Another Alice"))
		require.ErrorIs(t, err, ErrDuplicateEmail)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("no password is unusable", func(t *testing.T) {
		u, err := s.users.Create(ctx, newUserInput("nopass@example.com", "No Pass"))
		require.NoError(t, err)
		require.False(t, cryptox.IsUsable(u.PasswordHash))
	})

	t.Run("superuser implies staff", func(t *testing.T) {
		in := newUserInput("root@example.com", "Root")
		in.IsSuperuser = true
		u, err := s.users.Create(ctx, in)
		require.NoError(t, err)
		require.True(t, u.IsStaff)
		require.True(t, u.IsSuperuser)
	})

	t.Run("invalid input", func(t *testing.T) {
		in := newUserInput("bad", "")
		in.Password = "short"
		_, err := s.users.Create(ctx, in)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Contains(t, verr.Fields, "email")
		require.Contains(t, verr.Fields, "full_name")
		require.Contains(t, verr.Fields, "password")
	})
}

func TestUserServiceGet(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := mustUser(t, s, "bob@example.com", "Bob Jones")

	got, err := s.users.GetByEmail(ctx, " BOB@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.users.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.users.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceUpdateProfile(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := mustUser(t, s, "carol@example.com", "Carol King")
	other := mustUser(t, s, "dave@example.com", "Dave Gray")

	p := ProfileOf(u)
	p.PreferredName = "Caz"
	p.PhoneNumber = "+61412345678"
	updated, err := s.users.UpdateProfile(ctx, u.ID, p)
	require.NoError(t, err)
	require.Equal(t, "Caz", updated.PreferredName)
	require.Equal(t, "+61412345678", updated.PhoneNumber)
	require.Equal(t, u.PasswordHash, updated.PasswordHash)

	p = ProfileOf(other)
	p.Email = "Carol@Example.com"
	_, err = s.users.UpdateProfile(ctx, other.ID, p)
	require.ErrorIs(t, err, ErrDuplicateEmail)

	_, err = s.users.UpdateProfile(ctx, "missing", ProfileOf(u))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceList(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	a := mustUser(t, s, "erin@example.com", "Erin Stone")
	mustUser(t, s, "frank@example.com", "Frank Hill")

	_, err := s.users.Deactivate(ctx, a.ID)
	require.NoError(t, err)

	users, err := s.users.List(ctx, domain.UserFilter{Search: " stone "})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, a.ID, users[0].ID)

	active := true
	users, err = s.users.List(ctx, domain.UserFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Frank Hill", users[0].FullName)
}

func TestUserServiceCredentials(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	in := newUserInput("grace@example.com", "Grace Lee")
	in.Password = "a long enough password"
	u, err := s.users.Create(ctx, in)
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		got, err := s.users.VerifyCredentials(ctx, "Grace@Example.com", in.Password)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.users.VerifyCredentials(ctx, u.Email, "not the password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.users.VerifyCredentials(ctx, "nobody@example.com", in.Password)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("changed password", func(t *testing.T) {
		require.NoError(t, s.users.SetPassword(ctx, u.ID, "a brand new password"))
		_, err := s.users.VerifyCredentials(ctx, u.Email, in.Password)
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = s.users.VerifyCredentials(ctx, u.Email, "a brand new password")
		require.NoError(t, err)
	})

	t.Run("unusable password", func(t *testing.T) {
		require.NoError(t, s.users.SetPassword(ctx, u.ID, ""))
		_, err := s.users.VerifyCredentials(ctx, u.Email, "")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.NoError(t, s.users.SetPassword(ctx, u.ID, in.Password))
	})

	t.Run("inactive user", func(t *testing.T) {
		_, err := s.users.Deactivate(ctx, u.ID)
		require.NoError(t, err)
		_, err = s.users.VerifyCredentials(ctx, u.Email, in.Password)
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short password rejected", func(t *testing.T) {
		err := s.users.SetPassword(ctx, u.ID, "short")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("missing user", func(t *testing.T) {
		err := s.users.SetPassword(ctx, "missing", "long enough password")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserServiceFlags(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	u := mustUser(t, s, "heidi@example.com", "Heidi Park")

	got, err := s.users.SetFlags(ctx, u.ID, UserFlags{IsActive: true, IsSuperuser: true})
	require.NoError(t, err)
	require.True(t, got.IsStaff)
	require.True(t, got.IsSuperuser)

	got, err = s.users.Deactivate(ctx, u.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
	require.True(t, got.IsSuperuser)

	_, err = s.users.SetFlags(ctx, "missing", UserFlags{IsActive: true})
	require.ErrorIs(t, err, ErrNotFound)
}
