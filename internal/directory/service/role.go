package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

type RoleService struct {
	Store store.Store
}

// Assign grants a responsibility to a membership. Unavailable
// responsibilities are rejected with ErrResponsibilityUnavailable.
func (s *RoleService) Assign(ctx context.Context, membershipID, responsibilityID string) (domain.RoleDetail, error) {
	var detail domain.RoleDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Memberships().GetMembershipByID(ctx, membershipID); err != nil {
			return mapStoreErr(err, "membership "+membershipID, nil)
		}

		resp, err := tx.Responsibilities().GetResponsibilityByID(ctx, responsibilityID)
		if err != nil {
			return mapStoreErr(err, "responsibility "+responsibilityID, nil)
		}
		if !resp.IsAvailable {
			return ErrResponsibilityUnavailable
		}

		role := domain.Role{ID: idx.New().String(), MembershipID: membershipID, ResponsibilityID: responsibilityID}
		if err := tx.Roles().CreateRole(ctx, role); err != nil {
			return mapStoreErr(err, "assign role", ErrDuplicateRole)
		}

		detail, err = tx.Roles().GetRoleByID(ctx, role.ID)
		return mapStoreErr(err, "role "+role.ID, nil)
	})
	if err != nil {
		return domain.RoleDetail{}, err
	}

	slogx.FromContext(ctx).Info("role assigned",
		"role_id", detail.ID, "membership_id", membershipID, "responsibility", detail.Responsibility.Slug)
	return detail, nil
}

func (s *RoleService) Get(ctx context.Context, id string) (domain.RoleDetail, error) {
	r, err := s.Store.Roles().GetRoleByID(ctx, id)
	return r, mapStoreErr(err, "role "+id, nil)
}

func (s *RoleService) List(ctx context.Context, f domain.RoleFilter) ([]domain.RoleDetail, error) {
	f.Search = strings.TrimSpace(f.Search)
	rs, err := s.Store.Roles().ListRoles(ctx, f)
	return rs, mapStoreErr(err, "list roles", nil)
}

func (s *RoleService) Revoke(ctx context.Context, id string) error {
	if err := s.Store.Roles().DeleteRole(ctx, id); err != nil {
		return mapStoreErr(err, "revoke role "+id, nil)
	}
	slogx.FromContext(ctx).Info("role revoked", "role_id", id)
	return nil
}
