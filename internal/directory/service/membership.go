package service

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

// MembershipService adds users to groups and removes them.
type MembershipService struct {
	Store store.Store
}

// Add puts a user in a group. Adding the same pair twice fails with
// ErrDuplicateMembership.
func (s *MembershipService) Add(ctx context.Context, userID, groupID string) (domain.MembershipDetail, error) {
	var detail domain.MembershipDetail
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			return mapStoreErr(err, "user "+userID, nil)
		}
		if _, err := tx.Groups().GetGroupByID(ctx, groupID); err != nil {
			return mapStoreErr(err, "group "+groupID, nil)
		}

		m := domain.Membership{ID: idx.New().String(), UserID: userID, GroupID: groupID}
		if err := tx.Memberships().CreateMembership(ctx, m); err != nil {
			return mapStoreErr(err, "add membership", ErrDuplicateMembership)
		}

		var err error
		detail, err = tx.Memberships().GetMembershipByID(ctx, m.ID)
		return mapStoreErr(err, "membership "+m.ID, nil)
	})
	if err != nil {
		return domain.MembershipDetail{}, err
	}

	slogx.FromContext(ctx).Info("membership added",
		"membership_id", detail.ID, "user_id", userID, "group_id", groupID)
	return detail, nil
}

// Get returns the membership with its user and group.
func (s *MembershipService) Get(ctx context.Context, id string) (domain.MembershipDetail, error) {
	m, err := s.Store.Memberships().GetMembershipByID(ctx, id)
	return m, mapStoreErr(err, "membership "+id, nil)
}

// List returns memberships matching f, oldest first.
func (s *MembershipService) List(ctx context.Context, f domain.MembershipFilter) ([]domain.MembershipDetail, error) {
	f.Search = strings.TrimSpace(f.Search)
	ms, err := s.Store.Memberships().ListMemberships(ctx, f)
	return ms, mapStoreErr(err, "list memberships", nil)
}

// Remove deletes the membership and every role held through it.
func (s *MembershipService) Remove(ctx context.Context, id string) error {
	if err := s.Store.Memberships().DeleteMembership(ctx, id); err != nil {
		return mapStoreErr(err, "remove membership "+id, nil)
	}
	slogx.FromContext(ctx).Info("membership removed", "membership_id", id)
	return nil
}
