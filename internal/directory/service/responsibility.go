package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

// ResponsibilityInput creates or replaces a responsibility. IsAvailable
// defaults to true when nil.
type ResponsibilityInput struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"required,max=50,slug"`
	IsAvailable *bool  `json:"is_available"`
}

func (in *ResponsibilityInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Slug = strings.TrimSpace(in.Slug)
}

func (in ResponsibilityInput) available() bool {
	return in.IsAvailable == nil || *in.IsAvailable
}

type ResponsibilityService struct {
	Store store.Store
}

func (s *ResponsibilityService) Create(ctx context.Context, in ResponsibilityInput) (domain.Responsibility, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return domain.Responsibility{}, err
	}

	r := domain.Responsibility{
		ID:          idx.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Slug:        in.Slug,
		IsAvailable: in.available(),
	}
	if err := s.Store.Responsibilities().CreateResponsibility(ctx, r); err != nil {
		return domain.Responsibility{}, mapStoreErr(err, "create responsibility", ErrDuplicateResponsibility)
	}

	slogx.FromContext(ctx).Info("responsibility created", "responsibility_id", r.ID, "slug", r.Slug)
	return s.Get(ctx, r.ID)
}

func (s *ResponsibilityService) Get(ctx context.Context, id string) (domain.Responsibility, error) {
	r, err := s.Store.Responsibilities().GetResponsibilityByID(ctx, id)
	return r, mapStoreErr(err, "responsibility "+id, nil)
}

func (s *ResponsibilityService) List(
	ctx context.Context,
	f domain.ResponsibilityFilter,
) ([]domain.Responsibility, error) {
	f.Search = strings.TrimSpace(f.Search)
	rs, err := s.Store.Responsibilities().ListResponsibilities(ctx, f)
	return rs, mapStoreErr(err, "list responsibilities", nil)
}

// Update replaces the responsibility. Making it unavailable keeps the roles
// already granted.
func (s *ResponsibilityService) Update(
	ctx context.Context,
	id string,
	in ResponsibilityInput,
) (domain.Responsibility, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return domain.Responsibility{}, err
	}

	r := domain.Responsibility{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Slug:        in.Slug,
		IsAvailable: in.available(),
	}
	if err := s.Store.Responsibilities().UpdateResponsibility(ctx, r); err != nil {
		return domain.Responsibility{}, mapStoreErr(err, "update responsibility "+id, ErrDuplicateResponsibility)
	}
	return s.Get(ctx, id)
}

// Delete removes the responsibility and every role granting it.
func (s *ResponsibilityService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Responsibilities().DeleteResponsibility(ctx, id); err != nil {
		return mapStoreErr(err, "delete responsibility "+id, nil)
	}
	slogx.FromContext(ctx).Info("responsibility deleted", "responsibility_id", id)
	return nil
}
