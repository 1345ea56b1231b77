package gen

import (
	"context"
	"time"
)

const getResponsibilityByID = `SELECT ` + responsibilityColumns + ` FROM responsibilities WHERE id = ?`

func (q *Queries) GetResponsibilityByID(ctx context.Context, id string) (Responsibility, error) {
	row := q.db.QueryRowContext(ctx, getResponsibilityByID, id)
	var i Responsibility
	err := row.Scan(i.dest()...)
	return i, err
}

const getResponsibilityBySlug = `SELECT ` + responsibilityColumns + ` FROM responsibilities WHERE slug = ?`

func (q *Queries) GetResponsibilityBySlug(ctx context.Context, slug string) (Responsibility, error) {
	row := q.db.QueryRowContext(ctx, getResponsibilityBySlug, slug)
	var i Responsibility
	err := row.Scan(i.dest()...)
	return i, err
}

const listResponsibilities = `SELECT ` + responsibilityColumns + ` FROM responsibilities
WHERE (? = ''
        OR instr(lower(name), lower(?)) > 0
        OR instr(lower(description), lower(?)) > 0
        OR instr(lower(slug), lower(?)) > 0)
  AND (? < 0 OR is_available = ?)
ORDER BY is_available DESC, name, id`

type ListResponsibilitiesParams struct {
	Search    string
	Available int64 // -1 any, 0 unavailable, 1 available
}

func (q *Queries) ListResponsibilities(ctx context.Context, arg ListResponsibilitiesParams) ([]Responsibility, error) {
	rows, err := q.db.QueryContext(ctx, listResponsibilities,
		arg.Search, arg.Search, arg.Search, arg.Search,
		arg.Available, arg.Available,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Responsibility{}
	for rows.Next() {
		var i Responsibility
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

const createResponsibility = `INSERT INTO responsibilities (` + responsibilityColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

type CreateResponsibilityParams struct {
	ID          string
	Name        string
	Description string
	Slug        string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateResponsibility(ctx context.Context, arg CreateResponsibilityParams) error {
	_, err := q.db.ExecContext(ctx, createResponsibility,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Slug,
		arg.IsAvailable,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateResponsibility = `UPDATE responsibilities
SET name = ?, description = ?, slug = ?, is_available = ?, updated_at = ?
WHERE id = ?`

type UpdateResponsibilityParams struct {
	Name        string
	Description string
	Slug        string
	IsAvailable bool
	UpdatedAt   time.Time
	ID          string
}

func (q *Queries) UpdateResponsibility(ctx context.Context, arg UpdateResponsibilityParams) (int64, error) {
	return execRows(q.db.ExecContext(ctx, updateResponsibility,
		arg.Name,
		arg.Description,
		arg.Slug,
		arg.IsAvailable,
		arg.UpdatedAt,
		arg.ID,
	))
}

const deleteResponsibility = `DELETE FROM responsibilities WHERE id = ?`

func (q *Queries) DeleteResponsibility(ctx context.Context, id string) (int64, error) {
	return execRows(q.db.ExecContext(ctx, deleteResponsibility, id))
}
