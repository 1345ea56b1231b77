package gen

import (
	"context"
	"time"
)

const getGroupByID = `SELECT ` + groupColumns + ` FROM user_groups WHERE id = ?`

func (q *Queries) GetGroupByID(ctx context.Context, id string) (UserGroup, error) {
	row := q.db.QueryRowContext(ctx, getGroupByID, id)
	var i UserGroup
	err := row.Scan(i.dest()...)
	return i, err
}

const getGroupBySlug = `SELECT ` + groupColumns + ` FROM user_groups WHERE slug = ?`

func (q *Queries) GetGroupBySlug(ctx context.Context, slug string) (UserGroup, error) {
	row := q.db.QueryRowContext(ctx, getGroupBySlug, slug)
	var i UserGroup
	err := row.Scan(i.dest()...)
	return i, err
}

const listGroups = `SELECT ` + groupColumns + ` FROM user_groups
WHERE ? = ''
   OR instr(lower(short_name), lower(?)) > 0
   OR instr(lower(name), lower(?)) > 0
   OR instr(lower(slug), lower(?)) > 0
ORDER BY short_name, id`

func (q *Queries) ListGroups(ctx context.Context, search string) ([]UserGroup, error) {
	return q.queryGroups(ctx, listGroups, search, search, search, search)
}

var listGroupsForUser = `SELECT ` + qualify("g", groupColumns) + ` FROM user_groups g
JOIN memberships m ON m.group_id = g.id
WHERE m.user_id = ?
ORDER BY m.created_at, m.id`

func (q *Queries) ListGroupsForUser(ctx context.Context, userID string) ([]UserGroup, error) {
	return q.queryGroups(ctx, listGroupsForUser, userID)
}

func (q *Queries) queryGroups(ctx context.Context, query string, args ...any) ([]UserGroup, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []UserGroup{}
	for rows.Next() {
		var i UserGroup
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

const createGroup = `INSERT INTO user_groups (` + groupColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

type CreateGroupParams struct {
	ID        string
	Name      string
	ShortName string
	Slug      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) CreateGroup(ctx context.Context, arg CreateGroupParams) error {
	_, err := q.db.ExecContext(ctx, createGroup,
		arg.ID,
		arg.Name,
		arg.ShortName,
		arg.Slug,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateGroup = `UPDATE user_groups SET name = ?, short_name = ?, slug = ?, updated_at = ? WHERE id = ?`

type UpdateGroupParams struct {
	Name      string
	ShortName string
	Slug      string
	UpdatedAt time.Time
	ID        string
}

func (q *Queries) UpdateGroup(ctx context.Context, arg UpdateGroupParams) (int64, error) {
	return execRows(q.db.ExecContext(ctx, updateGroup,
		arg.Name,
		arg.ShortName,
		arg.Slug,
		arg.UpdatedAt,
		arg.ID,
	))
}

const deleteGroup = `DELETE FROM user_groups WHERE id = ?`

func (q *Queries) DeleteGroup(ctx context.Context, id string) (int64, error) {
	return execRows(q.db.ExecContext(ctx, deleteGroup, id))
}
