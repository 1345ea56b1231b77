package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
)

type responsibilitiesRepo struct {
	q   *gen.Queries
	now func() time.Time
}

func (r *responsibilitiesRepo) GetResponsibilityByID(ctx context.Context, id string) (domain.Responsibility, error) {
	row, err := r.q.GetResponsibilityByID(ctx, id)
	if err != nil {
		return domain.Responsibility{}, mapNotFound(err)
	}
	return mapResponsibility(row), nil
}

func (r *responsibilitiesRepo) GetResponsibilityBySlug(ctx context.Context, slug string) (domain.Responsibility, error) {
	row, err := r.q.GetResponsibilityBySlug(ctx, slug)
	if err != nil {
		return domain.Responsibility{}, mapNotFound(err)
	}
	return mapResponsibility(row), nil
}

func (r *responsibilitiesRepo) ListResponsibilities(
	ctx context.Context,
	f domain.ResponsibilityFilter,
) ([]domain.Responsibility, error) {
	rows, err := r.q.ListResponsibilities(ctx, gen.ListResponsibilitiesParams{
		Search:    f.Search,
		Available: triState(f.Available),
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Responsibility, len(rows))
	for i, row := range rows {
		out[i] = mapResponsibility(row)
	}
	return out, nil
}

func (r *responsibilitiesRepo) CreateResponsibility(ctx context.Context, resp domain.Responsibility) error {
	now := r.now()
	return mapWriteErr(r.q.CreateResponsibility(ctx, gen.CreateResponsibilityParams{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Slug:        resp.Slug,
		IsAvailable: resp.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}))
}

func (r *responsibilitiesRepo) UpdateResponsibility(ctx context.Context, resp domain.Responsibility) error {
	return mapAffected(r.q.UpdateResponsibility(ctx, gen.UpdateResponsibilityParams{
		Name:        resp.Name,
		Description: resp.Description,
		Slug:        resp.Slug,
		IsAvailable: resp.IsAvailable,
		UpdatedAt:   r.now(),
		ID:          resp.ID,
	}))
}

func (r *responsibilitiesRepo) DeleteResponsibility(ctx context.Context, id string) error {
	return mapAffected(r.q.DeleteResponsibility(ctx, id))
}
