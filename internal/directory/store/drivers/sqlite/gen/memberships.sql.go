package gen

import (
	"context"
	"time"
)

var membershipSelect = `SELECT ` + qualify("m", membershipColumns) + `, ` +
	qualify("u", userColumns) + `, ` + qualify("g", groupColumns) + `
FROM memberships m
JOIN users u ON u.id = m.user_id
JOIN user_groups g ON g.id = m.group_id`

type MembershipRow struct {
	Membership Membership
	User       User
	UserGroup  UserGroup
}

func (r *MembershipRow) dest() []any {
	return concat(r.Membership.dest(), r.User.dest(), r.UserGroup.dest())
}

var getMembershipByID = membershipSelect + `
WHERE m.id = ?`

func (q *Queries) GetMembershipByID(ctx context.Context, id string) (MembershipRow, error) {
	row := q.db.QueryRowContext(ctx, getMembershipByID, id)
	var i MembershipRow
	err := row.Scan(i.dest()...)
	return i, err
}

var getMembershipByUserAndGroup = membershipSelect + `
WHERE m.user_id = ? AND m.group_id = ?`

type GetMembershipByUserAndGroupParams struct {
	UserID  string
	GroupID string
}

func (q *Queries) GetMembershipByUserAndGroup(ctx context.Context, arg GetMembershipByUserAndGroupParams) (MembershipRow, error) {
	row := q.db.QueryRowContext(ctx, getMembershipByUserAndGroup, arg.UserID, arg.GroupID)
	var i MembershipRow
	err := row.Scan(i.dest()...)
	return i, err
}

var listMemberships = membershipSelect + `
WHERE (? = '' OR m.user_id = ?)
  AND (? = '' OR m.group_id = ?)
  AND (? = ''
        OR instr(lower(g.name), lower(?)) > 0
        OR instr(lower(g.short_name), lower(?)) > 0
        OR instr(lower(u.full_name), lower(?)) > 0
        OR instr(lower(u.preferred_name), lower(?)) > 0)
ORDER BY m.created_at, m.id`

type ListMembershipsParams struct {
	UserID  string
	GroupID string
	Search  string
}

func (q *Queries) ListMemberships(ctx context.Context, arg ListMembershipsParams) ([]MembershipRow, error) {
	rows, err := q.db.QueryContext(ctx, listMemberships,
		arg.UserID, arg.UserID,
		arg.GroupID, arg.GroupID,
		arg.Search, arg.Search, arg.Search, arg.Search, arg.Search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []MembershipRow{}
	for rows.Next() {
		var i MembershipRow
		if err := rows.Scan(i.dest()...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createMembership = `INSERT INTO memberships (` + membershipColumns + `) VALUES (?, ?, ?, ?)`

type CreateMembershipParams struct {
	ID        string
	UserID    string
	GroupID   string
	CreatedAt time.Time
}

func (q *Queries) CreateMembership(ctx context.Context, arg CreateMembershipParams) error {
	_, err := q.db.ExecContext(ctx, createMembership, arg.ID, arg.UserID, arg.GroupID, arg.CreatedAt)
	return err
}

const deleteMembership = `DELETE FROM memberships WHERE id = ?`

func (q *Queries) DeleteMembership(ctx context.Context, id string) (int64, error) {
	return execRows(q.db.ExecContext(ctx, deleteMembership, id))
}
