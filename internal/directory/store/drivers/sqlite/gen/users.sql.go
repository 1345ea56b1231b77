package gen

import (
	"context"
	"database/sql"
	"time"
)

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var i User
	err := row.Scan(i.dest()...)
	return i, err
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = ? COLLATE NOCASE`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var i User
	err := row.Scan(i.dest()...)
	return i, err
}

const listUsers = `SELECT ` + userColumns + ` FROM users
WHERE (? = ''
        OR instr(lower(full_name), lower(?)) > 0
        OR instr(lower(email), lower(?)) > 0
        OR instr(lower(preferred_name), lower(?)) > 0)
  AND (? = '' OR locale = ?)
  AND (? < 0 OR is_active = ?)
ORDER BY full_name, id`

type ListUsersParams struct {
	Search string
	Locale string
	Active int64 // -1 any, 0 inactive, 1 active
}

func (q *Queries) ListUsers(ctx context.Context, arg ListUsersParams) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers,
		arg.Search, arg.Search, arg.Search, arg.Search,
		arg.Locale, arg.Locale,
		arg.Active, arg.Active,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []User{}
	for rows.Next() {
		var i User
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

const createUser = `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type CreateUserParams struct {
	ID            string
	Email         string
	GivenName     string
	MiddleName    string
	FamilyName    string
	FullName      string
	PreferredName string
	Locale        string
	PhoneNumber   string
	DateOfBirth   sql.NullString
	PasswordHash  string
	IsStaff       bool
	IsActive      bool
	IsSuperuser   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.GivenName,
		arg.MiddleName,
		arg.FamilyName,
		arg.FullName,
		arg.PreferredName,
		arg.Locale,
		arg.PhoneNumber,
		arg.DateOfBirth,
		arg.PasswordHash,
		arg.IsStaff,
		arg.IsActive,
		arg.IsSuperuser,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateUserProfile = `UPDATE users
SET email = ?, given_name = ?, middle_name = ?, family_name = ?, full_name = ?,
    preferred_name = ?, locale = ?, phone_number = ?, date_of_birth = ?, updated_at = ?
WHERE id = ?`

type UpdateUserProfileParams struct {
	Email         string
	GivenName     string
	MiddleName    string
	FamilyName    string
	FullName      string
	PreferredName string
	Locale        string
	PhoneNumber   string
	DateOfBirth   sql.NullString
	UpdatedAt     time.Time
	ID            string
}

func (q *Queries) UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) (int64, error) {
	return execRows(q.db.ExecContext(ctx, updateUserProfile,
		arg.Email,
		arg.GivenName,
		arg.MiddleName,
		arg.FamilyName,
		arg.FullName,
		arg.PreferredName,
		arg.Locale,
		arg.PhoneNumber,
		arg.DateOfBirth,
		arg.UpdatedAt,
		arg.ID,
	))
}

const updateUserFlags = `UPDATE users
SET is_staff = ?, is_active = ?, is_superuser = ?, updated_at = ?
WHERE id = ?`

type UpdateUserFlagsParams struct {
	IsStaff     bool
	IsActive    bool
	IsSuperuser bool
	UpdatedAt   time.Time
	ID          string
}

func (q *Queries) UpdateUserFlags(ctx context.Context, arg UpdateUserFlagsParams) (int64, error) {
	return execRows(q.db.ExecContext(ctx, updateUserFlags,
		arg.IsStaff,
		arg.IsActive,
		arg.IsSuperuser,
		arg.UpdatedAt,
		arg.ID,
	))
}

const updateUserPasswordHash = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`

type UpdateUserPasswordHashParams struct {
	PasswordHash string
	UpdatedAt    time.Time
	ID           string
}

func (q *Queries) UpdateUserPasswordHash(ctx context.Context, arg UpdateUserPasswordHashParams) (int64, error) {
	return execRows(q.db.ExecContext(ctx, updateUserPasswordHash, arg.PasswordHash, arg.UpdatedAt, arg.ID))
}

const countSuperusers = `SELECT COUNT(*) FROM users WHERE is_superuser = 1`

func (q *Queries) CountSuperusers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countSuperusers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}
