package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
)

type membershipsRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id string) (domain.MembershipDetail, error) {
	row, err := r.q.GetMembershipByID(ctx, id)
	if err != nil {
		return domain.MembershipDetail{}, mapNotFound(err)
	}
	return mapMembershipRow(row), nil
}

func (r *membershipsRepo) GetMembership(ctx context.Context, userID, groupID string) (domain.MembershipDetail, error) {
	row, err := r.q.GetMembershipByUserAndGroup(ctx, gen.GetMembershipByUserAndGroupParams{
		UserID:  userID,
		GroupID: groupID,
	})
	if err != nil {
		return domain.MembershipDetail{}, mapNotFound(err)
	}
	return mapMembershipRow(row), nil
}

func (r *membershipsRepo) ListMemberships(ctx context.Context, f domain.MembershipFilter) ([]domain.MembershipDetail, error) {
	rows, err := r.q.ListMemberships(ctx, gen.ListMembershipsParams{
		UserID:  f.UserID,
		GroupID: f.GroupID,
		Search:  f.Search,
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.MembershipDetail, len(rows))
	for i, row := range rows {
		out[i] = mapMembershipRow(row)
	}
	return out, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	return mapWriteErr(r.q.CreateMembership(ctx, gen.CreateMembershipParams{
		ID:        m.ID,
		UserID:    m.UserID,
		GroupID:   m.GroupID,
		CreatedAt: r.now(),
	}))
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteMembership(ctx, id))
}
