package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

type GroupInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	ShortName string `json:"short_name" validate:"required,max=64"`
	Slug      string `json:"slug" validate:"required,max=50,slug"`
}

func (in *GroupInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.ShortName = strings.TrimSpace(in.ShortName)
	in.Slug = strings.TrimSpace(in.Slug)
}

type GroupService struct {
	Store store.Store
}

func (s *GroupService) Create(ctx context.Context, in GroupInput) (domain.Group, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return domain.Group{}, err
	}

	g := domain.Group{
		ID:        idx.New().String(),
		Name:      in.Name,
		ShortName: in.ShortName,
		Slug:      in.Slug,
	}
	if err := s.Store.Groups().CreateGroup(ctx, g); err != nil {
		return domain.Group{}, mapStoreErr(err, "create group", ErrDuplicateGroupSlug)
	}

	slogx.FromContext(ctx).Info("group created", "group_id", g.ID, "slug", g.Slug)
	return s.Get(ctx, g.ID)
}

func (s *GroupService) Get(ctx context.Context, id string) (domain.Group, error) {
	g, err := s.Store.Groups().GetGroupByID(ctx, id)
	return g, mapStoreErr(err, "group "+id, nil)
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (domain.Group, error) {
	g, err := s.Store.Groups().GetGroupBySlug(ctx, strings.TrimSpace(slug))
	return g, mapStoreErr(err, "group "+slug, nil)
}

func (s *GroupService) List(ctx context.Context, search string) ([]domain.Group, error) {
	groups, err := s.Store.Groups().ListGroups(ctx, strings.TrimSpace(search))
	return groups, mapStoreErr(err, "list groups", nil)
}

func (s *GroupService) Update(ctx context.Context, id string, in GroupInput) (domain.Group, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return domain.Group{}, err
	}

	g := domain.Group{ID: id, Name: in.Name, ShortName: in.ShortName, Slug: in.Slug}
	if err := s.Store.Groups().UpdateGroup(ctx, g); err != nil {
		return domain.Group{}, mapStoreErr(err, "update group "+id, ErrDuplicateGroupSlug)
	}
	return s.Get(ctx, id)
}

// Delete removes the group together with its memberships and their roles.
func (s *GroupService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Groups().DeleteGroup(ctx, id); err != nil {
		return mapStoreErr(err, "delete group "+id, nil)
	}
	slogx.FromContext(ctx).Info("group deleted", "group_id", id)
	return nil
}
