package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	rows, err := r.q.ListUsers(ctx, gen.ListUsersParams{
		Search: f.Search,
		Locale: f.Locale,
		Active: triState(f.Active),
	})
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = mapUser(row)
	}
	return users, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := r.now()
	return mapWriteErr(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:            u.ID,
		Email:         u.Email,
		GivenName:     u.GivenName,
		MiddleName:    u.MiddleName,
		FamilyName:    u.FamilyName,
		FullName:      u.FullName,
		PreferredName: u.PreferredName,
		Locale:        u.Locale,
		PhoneNumber:   u.PhoneNumber,
		DateOfBirth:   mapDateNull(u.DateOfBirth),
		PasswordHash:  u.PasswordHash,
		IsStaff:       u.IsStaff,
		IsActive:      u.IsActive,
		IsSuperuser:   u.IsSuperuser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}))
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, u domain.User) error {
	return mapAffected(r.q.UpdateUserProfile(ctx, gen.UpdateUserProfileParams{
		Email:         u.Email,
		GivenName:     u.GivenName,
		MiddleName:    u.MiddleName,
		FamilyName:    u.FamilyName,
		FullName:      u.FullName,
		PreferredName: u.PreferredName,
		Locale:        u.Locale,
		PhoneNumber:   u.PhoneNumber,
		DateOfBirth:   mapDateNull(u.DateOfBirth),
		UpdatedAt:     r.now(),
		ID:            u.ID,
	}))
}

func (r *usersRepo) UpdateUserFlags(ctx context.Context, userID string, staff, active, superuser bool) error {
	return mapAffected(r.q.UpdateUserFlags(ctx, gen.UpdateUserFlagsParams{
		IsStaff:     staff,
		IsActive:    active,
		IsSuperuser: superuser,
		UpdatedAt:   r.now(),
		ID:          userID,
	}))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID string, newHash string) error {
	return mapAffected(r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		UpdatedAt:    r.now(),
		ID:           userID,
	}))
}

func (r *usersRepo) AnySuperuser(ctx context.Context) (bool, error) {
	count, err := r.q.CountSuperusers(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
