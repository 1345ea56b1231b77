package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/internal/directory/store/drivers/sqlite/gen"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dateLayout is how dates of birth are persisted.
const dateLayout = "2006-01-02"

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	now func() time.Time
}

// NewStore opens the sqlite database at dsn. Foreign keys are enforced and
// the pool is capped at one connection: sqlite has a single writer and
// ":memory:" databases are private to their connection.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return newStoreWithDB(db), nil
}

func newStoreWithDB(db *sql.DB) *Store {
	return &Store{
		db:  db,
		q:   gen.New(db),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.now), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Users() store.Users             { return &usersRepo{q: s.q, now: s.now} }
func (s *Store) Groups() store.Groups           { return &groupsRepo{q: s.q, now: s.now} }
func (s *Store) Memberships() store.Memberships { return &membershipsRepo{q: s.q, now: s.now} }
func (s *Store) Responsibilities() store.Responsibilities {
	return &responsibilitiesRepo{q: s.q, now: s.now}
}
func (s *Store) Roles() store.Roles { return &rolesRepo{q: s.q, now: s.now} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr translates constraint violations into store errors.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %s", store.ErrAlreadyExists, se.Error())
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %s", store.ErrReference, se.Error())
	}

	// Without extended result codes only the message tells them apart.
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := se.Error()
		switch {
		case strings.Contains(msg, "UNIQUE"):
			return fmt.Errorf("%w: %s", store.ErrAlreadyExists, msg)
		case strings.Contains(msg, "FOREIGN KEY"):
			return fmt.Errorf("%w: %s", store.ErrReference, msg)
		}
	}
	return err
}

// mapAffected turns a zero-row update or delete into ErrNotFound.
func mapAffected(n int64, err error) error {
	if err != nil {
		return mapWriteErr(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// triState encodes an optional boolean filter as -1 (any), 0 or 1.
func triState(b *bool) int64 {
	switch {
	case b == nil:
		return -1
	case *b:
		return 1
	default:
		return 0
	}
}

func mapDate(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

func mapDateNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:            row.ID,
		Email:         row.Email,
		GivenName:     row.GivenName,
		MiddleName:    row.MiddleName,
		FamilyName:    row.FamilyName,
		FullName:      row.FullName,
		PreferredName: row.PreferredName,
		Locale:        row.Locale,
		PhoneNumber:   row.PhoneNumber,
		DateOfBirth:   mapDate(row.DateOfBirth),
		PasswordHash:  row.PasswordHash,
		IsStaff:       row.IsStaff,
		IsActive:      row.IsActive,
		IsSuperuser:   row.IsSuperuser,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapGroup(row gen.UserGroup) domain.Group {
	return domain.Group{
		ID:        row.ID,
		Name:      row.Name,
		ShortName: row.ShortName,
		Slug:      row.Slug,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapMembership(row gen.Membership) domain.Membership {
	return domain.Membership{
		ID:        row.ID,
		UserID:    row.UserID,
		GroupID:   row.GroupID,
		CreatedAt: row.CreatedAt,
	}
}

func mapMembershipRow(row gen.MembershipRow) domain.MembershipDetail {
	return domain.MembershipDetail{
		Membership: mapMembership(row.Membership),
		User:       mapUser(row.User),
		Group:      mapGroup(row.UserGroup),
	}
}

func mapResponsibility(row gen.Responsibility) domain.Responsibility {
	return domain.Responsibility{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Slug:        row.Slug,
		IsAvailable: row.IsAvailable,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapRoleRow(row gen.RoleRow) domain.RoleDetail {
	return domain.RoleDetail{
		Role: domain.Role{
			ID:               row.Role.ID,
			MembershipID:     row.Role.MembershipID,
			ResponsibilityID: row.Role.ResponsibilityID,
			CreatedAt:        row.Role.CreatedAt,
		},
		User:           mapUser(row.User),
		Group:          mapGroup(row.UserGroup),
		Responsibility: mapResponsibility(row.Responsibility),
	}
}
