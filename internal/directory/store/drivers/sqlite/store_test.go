package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email, fullName string) domain.User {
	t.Helper()

	u := domain.User{
		ID:            idx.New().String(),
		Email:         email,
		GivenName:     "Given",
		FamilyName:    "Family",
		FullName:      fullName,
		PreferredName: fullName,
		Locale:        "en_AU",
		PasswordHash:  "!",
		IsActive:      true,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedGroup(t *testing.T, s store.Store, slug, shortName string) domain.Group {
	t.Helper()

	g := domain.Group{
		ID:        idx.New().String(),
		Name:      shortName + " Group",
		ShortName: shortName,
		Slug:      slug,
	}
	require.NoError(t, s.Groups().CreateGroup(context.Background(), g))
	return g
}

func seedMembership(t *testing.T, s store.Store, u domain.User, g domain.Group) domain.Membership {
	t.Helper()

	m := domain.Membership{ID: idx.New().String(), UserID: u.ID, GroupID: g.ID}
	require.NoError(t, s.Memberships().CreateMembership(context.Background(), m))
	return m
}

func seedResponsibility(t *testing.T, s store.Store, slug, name string, available bool) domain.Responsibility {
	t.Helper()

	r := domain.Responsibility{
		ID:          idx.New().String(),
		Name:        name,
		Description: name + " duties",
		Slug:        slug,
		IsAvailable: available,
	}
	require.NoError(t, s.Responsibilities().CreateResponsibility(context.Background(), r))
	return r
}

func seedRole(t *testing.T, s store.Store, m domain.Membership, r domain.Responsibility) domain.Role {
	t.Helper()

	role := domain.Role{ID: idx.New().String(), MembershipID: m.ID, ResponsibilityID: r.ID}
	require.NoError(t, s.Roles().CreateRole(context.Background(), role))
	return role
}

func TestUsersRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	u := domain.User{
		ID:            idx.New().String(),
		Email:         "alice@example.com",
		GivenName:     "Alice",
		MiddleName:    "May",
		FamilyName:    "Liddell",
		FullName:      "Alice May Liddell",
		PreferredName: "Ali",
		Locale:        "en_GB",
		PhoneNumber:   "+61400000000",
		DateOfBirth:   &dob,
		PasswordHash:  "argon2id$...",
		IsStaff:       true,
		IsActive:      true,
	}
	require.NoError(t, s.Users().CreateUser(ctx, u))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, "May", got.MiddleName)
	require.Equal(t, "+61400000000", got.PhoneNumber)
	require.NotNil(t, got.DateOfBirth)
	require.Equal(t, "1990-04-12", got.DateOfBirth.Format("2006-01-02"))
	require.True(t, got.IsStaff)
	require.True(t, got.IsActive)
	require.False(t, got.IsSuperuser)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.IsZero())

	byEmail, err := s.Users().GetUserByEmail(ctx, "ALICE@example.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersEmailUniqueIgnoresCase(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seedUser(t, s, "bob@example.com", "Bob")

	dup := domain.User{
		ID:            idx.New().String(),
		Email:         "BOB@example.com",
		GivenName:     "Bob",
		FamilyName:    "Two",
		FullName:      "Bob Two",
		PreferredName: "Bob",
		Locale:        "en_AU",
	}
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)
}

func TestUsersUpdates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	u := seedUser(t, s, "carol@example.com", "Carol")

	u.FullName = "Carol Danvers"
	u.DateOfBirth = nil
	require.NoError(t, s.Users().UpdateUserProfile(ctx, u))

	require.NoError(t, s.Users().UpdateUserFlags(ctx, u.ID, true, false, true))
	require.NoError(t, s.Users().UpdatePasswordHash(ctx, u.ID, "new-hash"))

	got, err := s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Carol Danvers", got.FullName)
	require.Nil(t, got.DateOfBirth)
	require.True(t, got.IsStaff)
	require.False(t, got.IsActive)
	require.True(t, got.IsSuperuser)
	require.Equal(t, "new-hash", got.PasswordHash)

	hasSuperuser, err := s.Users().AnySuperuser(ctx)
	require.NoError(t, err)
	require.True(t, hasSuperuser)

	require.ErrorIs(t, s.Users().UpdateUserFlags(ctx, "missing", false, false, false), store.ErrNotFound)
}

func TestListUsersFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	zed := seedUser(t, s, "zed@example.com", "Zed Zulu")
	amy := seedUser(t, s, "amy@example.com", "Amy Alpha")
	require.NoError(t, s.Users().UpdateUserFlags(ctx, zed.ID, false, false, false))

	all, err := s.Users().ListUsers(ctx, domain.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, amy.ID, all[0].ID, "ordered by full name")

	active := true
	onlyActive, err := s.Users().ListUsers(ctx, domain.UserFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	require.Equal(t, amy.ID, onlyActive[0].ID)

	search, err := s.Users().ListUsers(ctx, domain.UserFilter{Search: "ZULU"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	require.Equal(t, zed.ID, search[0].ID)

	byLocale, err := s.Users().ListUsers(ctx, domain.UserFilter{Locale: "fr_FR"})
	require.NoError(t, err)
	require.Empty(t, byLocale)
}

func TestGroupsCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	g := seedGroup(t, s, "ops", "Ops")
	dup := domain.Group{ID: idx.New().String(), Name: "Other", ShortName: "Other", Slug: "ops"}
	require.ErrorIs(t, s.Groups().CreateGroup(ctx, dup), store.ErrAlreadyExists)

	g.Name = "Operations"
	require.NoError(t, s.Groups().UpdateGroup(ctx, g))

	got, err := s.Groups().GetGroupBySlug(ctx, "ops")
	require.NoError(t, err)
	require.Equal(t, "Operations", got.Name)

	seedGroup(t, s, "admin", "Admin")
	list, err := s.Groups().ListGroups(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Admin", list[0].ShortName, "ordered by short name")

	list, err = s.Groups().ListGroups(ctx, "operat")
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.Groups().DeleteGroup(ctx, g.ID))
	require.ErrorIs(t, s.Groups().DeleteGroup(ctx, g.ID), store.ErrNotFound)
}

func TestMembershipUniquePerUserAndGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "dan@example.com", "Dan")
	g := seedGroup(t, s, "ops", "Ops")
	seedMembership(t, s, u, g)

	again := domain.Membership{ID: idx.New().String(), UserID: u.ID, GroupID: g.ID}
	require.ErrorIs(t, s.Memberships().CreateMembership(ctx, again), store.ErrAlreadyExists)

	missing := domain.Membership{ID: idx.New().String(), UserID: "nobody", GroupID: g.ID}
	require.ErrorIs(t, s.Memberships().CreateMembership(ctx, missing), store.ErrReference)

	got, err := s.Memberships().GetMembership(ctx, u.ID, g.ID)
	require.NoError(t, err)
	require.Equal(t, "Dan", got.User.FullName)
	require.Equal(t, "ops", got.Group.Slug)
}

func TestRoleUniquePerMembershipAndResponsibility(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "eve@example.com", "Eve")
	g := seedGroup(t, s, "ops", "Ops")
	m := seedMembership(t, s, u, g)
	r := seedResponsibility(t, s, "treasurer", "Treasurer", true)
	seedRole(t, s, m, r)

	again := domain.Role{ID: idx.New().String(), MembershipID: m.ID, ResponsibilityID: r.ID}
	require.ErrorIs(t, s.Roles().CreateRole(ctx, again), store.ErrAlreadyExists)
}

func TestDeleteGroupCascades(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "fay@example.com", "Fay")
	doomed := seedGroup(t, s, "doomed", "Doomed")
	kept := seedGroup(t, s, "kept", "Kept")
	r := seedResponsibility(t, s, "chair", "Chair", true)

	m1 := seedMembership(t, s, u, doomed)
	m2 := seedMembership(t, s, u, kept)
	role1 := seedRole(t, s, m1, r)
	role2 := seedRole(t, s, m2, r)

	require.NoError(t, s.Groups().DeleteGroup(ctx, doomed.ID))

	_, err := s.Memberships().GetMembershipByID(ctx, m1.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Roles().GetRoleByID(ctx, role1.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Memberships().GetMembershipByID(ctx, m2.ID)
	require.NoError(t, err)
	_, err = s.Roles().GetRoleByID(ctx, role2.ID)
	require.NoError(t, err)

	groups, err := s.Groups().ListGroupsForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, kept.ID, groups[0].ID)
}

func TestDeleteResponsibilityCascadesRoles(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "gil@example.com", "Gil")
	g := seedGroup(t, s, "ops", "Ops")
	m := seedMembership(t, s, u, g)
	r := seedResponsibility(t, s, "scribe", "Scribe", true)
	role := seedRole(t, s, m, r)

	require.NoError(t, s.Responsibilities().DeleteResponsibility(ctx, r.ID))
	_, err := s.Roles().GetRoleByID(ctx, role.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Memberships().GetMembershipByID(ctx, m.ID)
	require.NoError(t, err)
}

func TestListRolesForUserAcrossGroups(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := seedUser(t, s, "hal@example.com", "Hal")
	other := seedUser(t, s, "ivy@example.com", "Ivy")
	g1 := seedGroup(t, s, "ops", "Ops")
	g2 := seedGroup(t, s, "dev", "Dev")
	lead := seedResponsibility(t, s, "lead", "Lead", true)

	seedRole(t, s, seedMembership(t, s, u, g1), lead)
	seedRole(t, s, seedMembership(t, s, u, g2), lead)
	seedRole(t, s, seedMembership(t, s, other, g1), lead)

	roles, err := s.Roles().ListRolesForUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, roles, 2)
	for _, r := range roles {
		require.Equal(t, u.ID, r.User.ID)
		require.Equal(t, "lead", r.Responsibility.Slug)
	}
	require.Equal(t, "ops", roles[0].Group.Slug, "ordered by creation")

	byGroup, err := s.Roles().ListRoles(ctx, domain.RoleFilter{GroupID: g1.ID})
	require.NoError(t, err)
	require.Len(t, byGroup, 2)

	bySearch, err := s.Roles().ListRoles(ctx, domain.RoleFilter{Search: "ivy"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, other.ID, bySearch[0].User.ID)
}

func TestListResponsibilitiesAvailableFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	seedResponsibility(t, s, "archivist", "Archivist", false)
	seedResponsibility(t, s, "zookeeper", "Zookeeper", true)
	seedResponsibility(t, s, "bard", "Bard", true)

	all, err := s.Responsibilities().ListResponsibilities(ctx, domain.ResponsibilityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"bard", "zookeeper", "archivist"},
		[]string{all[0].Slug, all[1].Slug, all[2].Slug})

	unavailable := false
	only, err := s.Responsibilities().ListResponsibilities(ctx, domain.ResponsibilityFilter{Available: &unavailable})
	require.NoError(t, err)
	require.Len(t, only, 1)
	require.Equal(t, "archivist", only[0].Slug)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		g := domain.Group{ID: idx.New().String(), Name: "Tmp", ShortName: "Tmp", Slug: "tmp"}
		if err := tx.Groups().CreateGroup(ctx, g); err != nil {
			return err
		}
		return store.ErrReference
	})
	require.ErrorIs(t, err, store.ErrReference)

	_, err = s.Groups().GetGroupBySlug(ctx, "tmp")
	require.ErrorIs(t, err, store.ErrNotFound)
}
