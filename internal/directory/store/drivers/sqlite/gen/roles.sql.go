package gen

import (
	"context"
	"time"
)

var roleSelect = `SELECT ` + qualify("r", roleColumns) + `, ` +
	qualify("m", membershipColumns) + `, ` +
	qualify("u", userColumns) + `, ` +
	qualify("g", groupColumns) + `, ` +
	qualify("p", responsibilityColumns) + `
FROM roles r
JOIN memberships m ON m.id = r.membership_id
JOIN users u ON u.id = m.user_id
JOIN user_groups g ON g.id = m.group_id
JOIN responsibilities p ON p.id = r.responsibility_id`

type RoleRow struct {
	Role           Role
	Membership     Membership
	User           User
	UserGroup      UserGroup
	Responsibility Responsibility
}

func (r *RoleRow) dest() []any {
	return concat(
		r.Role.dest(),
		r.Membership.dest(),
		r.User.dest(),
		r.UserGroup.dest(),
		r.Responsibility.dest(),
	)
}

var getRoleByID = roleSelect + `
WHERE r.id = ?`

func (q *Queries) GetRoleByID(ctx context.Context, id string) (RoleRow, error) {
	row := q.db.QueryRowContext(ctx, getRoleByID, id)
	var i RoleRow
	err := row.Scan(i.dest()...)
	return i, err
}

var listRoles = roleSelect + `
WHERE (? = '' OR m.user_id = ?)
  AND (? = '' OR m.group_id = ?)
  AND (? = '' OR r.responsibility_id = ?)
  AND (? = ''
        OR instr(lower(g.name), lower(?)) > 0
        OR instr(lower(g.short_name), lower(?)) > 0
        OR instr(lower(u.full_name), lower(?)) > 0
        OR instr(lower(u.preferred_name), lower(?)) > 0
        OR instr(lower(p.name), lower(?)) > 0)
ORDER BY r.created_at, r.id`

type ListRolesParams struct {
	UserID           string
	GroupID          string
	ResponsibilityID string
	Search           string
}

func (q *Queries) ListRoles(ctx context.Context, arg ListRolesParams) ([]RoleRow, error) {
	rows, err := q.db.QueryContext(ctx, listRoles,
		arg.UserID, arg.UserID,
		arg.GroupID, arg.GroupID,
		arg.ResponsibilityID, arg.ResponsibilityID,
		arg.Search, arg.Search, arg.Search, arg.Search, arg.Search, arg.Search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []RoleRow{}
	for rows.Next() {
		var i RoleRow
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

const createRole = `INSERT INTO roles (` + roleColumns + `) VALUES (?, ?, ?, ?)`

type CreateRoleParams struct {
	ID               string
	MembershipID     string
	ResponsibilityID string
	CreatedAt        time.Time
}

func (q *Queries) CreateRole(ctx context.Context, arg CreateRoleParams) error {
	_, err := q.db.ExecContext(ctx, createRole, arg.ID, arg.MembershipID, arg.ResponsibilityID, arg.CreatedAt)
	return err
}

const deleteRole = `DELETE FROM roles WHERE id = ?`

func (q *Queries) DeleteRole(ctx context.Context, id string) (int64, error) {
	return execRows(q.db.ExecContext(ctx, deleteRole, id))
}
