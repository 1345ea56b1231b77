package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
)

type rolesRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.RoleDetail, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.RoleDetail{}, mapNotFound(err)
	}
	return mapRoleRow(row), nil
}

func (r *rolesRepo) ListRoles(ctx context.Context, f domain.RoleFilter) ([]domain.RoleDetail, error) {
	rows, err := r.q.ListRoles(ctx, gen.ListRolesParams{
		UserID:           f.UserID,
		GroupID:          f.GroupID,
		ResponsibilityID: f.ResponsibilityID,
		Search:           f.Search,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.RoleDetail, len(rows))
	for i, row := range rows {
		out[i] = mapRoleRow(row)
	}
	return out, nil
}

func (r *rolesRepo) ListRolesForUser(ctx context.Context, userID string) ([]domain.RoleDetail, error) {
	if userID == "" {
		return []domain.RoleDetail{}, nil
	}
	return r.ListRoles(ctx, domain.RoleFilter{UserID: userID})
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	return mapWriteErr(r.q.CreateRole(ctx, gen.CreateRoleParams{
		ID:               role.ID,
		MembershipID:     role.MembershipID,
		ResponsibilityID: role.ResponsibilityID,
		CreatedAt:        r.now(),
	}))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteRole(ctx, id))
}
