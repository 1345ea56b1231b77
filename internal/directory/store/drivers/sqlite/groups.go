package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
)

type groupsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *groupsRepo) GetGroupByID(ctx context.Context, id string) (domain.Group, error) {
	row, err := r.q.GetGroupByID(ctx, id)
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return mapGroup(row), nil
}

func (r *groupsRepo) GetGroupBySlug(ctx context.Context, slug string) (domain.Group, error) {
	row, err := r.q.GetGroupBySlug(ctx, slug)
	if err != nil {
		return domain.Group{}, mapNotFound(err)
	}
	return mapGroup(row), nil
}

func (r *groupsRepo) ListGroups(ctx context.Context, search string) ([]domain.Group, error) {
	rows, err := r.q.ListGroups(ctx, search)
	if err != nil {
		return nil, err
	}
	return mapGroups(rows), nil
}

func (r *groupsRepo) ListGroupsForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	rows, err := r.q.ListGroupsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapGroups(rows), nil
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) error {
	now := r.now()
	return mapWriteErr(r.q.CreateGroup(ctx, gen.CreateGroupParams{
		ID:        g.ID,
		Name:      g.Name,
		ShortName: g.ShortName,
		Slug:      g.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}))
}

func (r *groupsRepo) UpdateGroup(ctx context.Context, g domain.Group) error {
	return mapAffected(r.q.UpdateGroup(ctx, gen.UpdateGroupParams{
		Name:      g.Name,
		ShortName: g.ShortName,
		Slug:      g.Slug,
		UpdatedAt: r.now(),
		ID:        g.ID,
	}))
}

func (r *groupsRepo) DeleteGroup(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteGroup(ctx, id))
}

func mapGroups(rows []gen.UserGroup) []domain.Group {
	groups := make([]domain.Group, len(rows))
	for i, row := range rows {
		groups[i] = mapGroup(row)
	}
	return groups
}
