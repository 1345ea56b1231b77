package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSuperuser(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)
	svc := &SuperuserService{Store: s.store, Users: s.users}

	creds, err := svc.EnsureSuperuser(ctx)
	require.NoError(t, err)
	require.NotNil(t, creds)
	require.Equal(t, DefaultSuperuserEmail, creds.Email)
	require.Len(t, creds.Password, superuserPasswordLength)

	u, err := s.users.VerifyCredentials(ctx, creds.Email, creds.Password)
	require.NoError(t, err)
	require.Equal(t, creds.UserID, u.ID)
	require.True(t, u.IsSuperuser)
	require.True(t, u.IsStaff)

	again, err := svc.EnsureSuperuser(ctx)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestEnsureSuperuserSkipsWhenOneExists(t *testing.T) {
	ctx := context.Background()
	s := newServices(t)

	in := newUserInput("admin@example.com", "Admin")
	in.IsSuperuser = true
	_, err := s.users.Create(ctx, in)
	require.NoError(t, err)

	svc := &SuperuserService{Store: s.store, Users: s.users}
	creds, err := svc.EnsureSuperuser(ctx)
	require.NoError(t, err)
	require.Nil(t, creds)

	_, err = s.users.GetByEmail(ctx, DefaultSuperuserEmail)
	require.ErrorIs(t, err, ErrNotFound)
}
