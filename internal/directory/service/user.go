package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/directory/internal/directory/domain"
	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/cryptox"
	"github.com/aussiebroadwan/directory/pkg/idx"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

// UserProfile is the editable identity of a user.
type UserProfile struct {
	Email         string     `json:"email" validate:"required,max=254,login_email"`
	GivenName     string     `json:"given_name" validate:"required,max=256"`
	MiddleName    string     `json:"middle_name" validate:"max=256"`
	FamilyName    string     `json:"family_name" validate:"required,max=256"`
	FullName      string     `json:"full_name" validate:"required,max=1024"`
	PreferredName string     `json:"preferred_name" validate:"required,max=256"`
	Locale        string     `json:"locale" validate:"required,max=256,locale"`
	PhoneNumber   string     `json:"phone_number" validate:"omitempty,e164"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
}

// UserFlags are the account switches only superusers may change.
type UserFlags struct {
	IsStaff     bool
	IsActive    bool
	IsSuperuser bool
}

// NewUser is everything needed to create an account. An empty password
// leaves the account without a usable password.
type NewUser struct {
	UserProfile
	Password    string `json:"password" validate:"omitempty,min=8,max=1024"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserService manages user accounts and checks their credentials.
type UserService struct {
	Store store.Store
}

func (p *UserProfile) normalize() {
	p.Email = NormalizeEmail(p.Email)
	p.GivenName = strings.TrimSpace(p.GivenName)
	p.MiddleName = strings.TrimSpace(p.MiddleName)
	p.FamilyName = strings.TrimSpace(p.FamilyName)
	p.FullName = strings.TrimSpace(p.FullName)
	p.PreferredName = strings.TrimSpace(p.PreferredName)
	p.Locale = strings.TrimSpace(p.Locale)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	if p.DateOfBirth != nil {
		d := time.Date(p.DateOfBirth.Year(), p.DateOfBirth.Month(), p.DateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
		p.DateOfBirth = &d
	}
}

func (p UserProfile) apply(u *domain.User) {
	u.Email = p.Email
	u.GivenName = p.GivenName
	u.MiddleName = p.MiddleName
	u.FamilyName = p.FamilyName
	u.FullName = p.FullName
	u.PreferredName = p.PreferredName
	u.Locale = p.Locale
	u.PhoneNumber = p.PhoneNumber
	u.DateOfBirth = p.DateOfBirth
}

// ProfileOf returns the editable fields of u.
func ProfileOf(u domain.User) UserProfile {
	return UserProfile{
		Email:         u.Email,
		GivenName:     u.GivenName,
		MiddleName:    u.MiddleName,
		FamilyName:    u.FamilyName,
		FullName:      u.FullName,
		PreferredName: u.PreferredName,
		Locale:        u.Locale,
		PhoneNumber:   u.PhoneNumber,
		DateOfBirth:   u.DateOfBirth,
	}
}

// Create validates and stores a new active user.
func (s *UserService) Create(ctx context.Context, in NewUser) (domain.User, error) {
	in.normalize()
	if err := validateStruct(in); err != nil {
		return domain.User{}, err
	}

	hash := cryptox.UnusablePassword
	if in.Password != "" {
		var err error
		if hash, err = cryptox.HashPassword(in.Password); err != nil {
			return domain.User{}, err
		}
	}

	u := domain.User{
		ID:           idx.New().String(),
		PasswordHash: hash,
		IsStaff:      in.IsStaff || in.IsSuperuser,
		IsActive:     true,
		IsSuperuser:  in.IsSuperuser,
	}
	in.UserProfile.apply(&u)

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, mapStoreErr(err, "create user", ErrDuplicateEmail)
	}

	slogx.FromContext(ctx).Info("user created", "user_id", u.ID, "staff", u.IsStaff, "superuser", u.IsSuperuser)
	return s.Get(ctx, u.ID)
}

// Get returns the user with the given ID.
func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	return u, mapStoreErr(err, "user "+id, nil)
}

// GetByEmail looks a user up by their normalized email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(email))
	return u, mapStoreErr(err, "user by email", nil)
}

// List returns users matching f, ordered by full name.
func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	f.Search = strings.TrimSpace(f.Search)
	f.Locale = strings.TrimSpace(f.Locale)
	users, err := s.Store.Users().ListUsers(ctx, f)
	return users, mapStoreErr(err, "list users", nil)
}

// UpdateProfile replaces the user's profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, id string, p UserProfile) (domain.User, error) {
	return s.Update(ctx, id, &p, nil)
}

// SetFlags changes the staff, active and superuser switches. Superusers are
// always staff.
func (s *UserService) SetFlags(ctx context.Context, id string, f UserFlags) (domain.User, error) {
	return s.Update(ctx, id, nil, &f)
}

// Update writes a profile change, a flag change, or both, in one
// transaction. A nil argument leaves that part untouched.
func (s *UserService) Update(ctx context.Context, id string, p *UserProfile, f *UserFlags) (domain.User, error) {
	if p != nil {
		p.normalize()
		if err := validateStruct(*p); err != nil {
			return domain.User{}, err
		}
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return mapStoreErr(err, "user "+id, nil)
		}

		if p != nil {
			p.apply(&u)
			if err := tx.Users().UpdateUserProfile(ctx, u); err != nil {
				return mapStoreErr(err, "update user "+id, ErrDuplicateEmail)
			}
		}

		if f != nil {
			staff := f.IsStaff || f.IsSuperuser
			if err := tx.Users().UpdateUserFlags(ctx, id, staff, f.IsActive, f.IsSuperuser); err != nil {
				return mapStoreErr(err, "update user "+id, nil)
			}
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	if f != nil {
		slogx.FromContext(ctx).Info("user flags changed",
			"user_id", id, "staff", f.IsStaff || f.IsSuperuser, "active", f.IsActive, "superuser", f.IsSuperuser)
	}
	return s.Get(ctx, id)
}

// Deactivate clears the active flag. Accounts are never deleted.
func (s *UserService) Deactivate(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return s.SetFlags(ctx, id, UserFlags{IsStaff: u.IsStaff, IsActive: false, IsSuperuser: u.IsSuperuser})
}

// dummyHash is verified against when the email is unknown.
var dummyHash = sync.OnceValue(func() string {
	h, _ := cryptox.HashPassword(idx.New().String())
	return h
})

type passwordInput struct {
	Password string `json:"password" validate:"omitempty,min=8,max=1024"`
}

// SetPassword hashes and stores a new password. An empty password makes
// the account's password unusable.
func (s *UserService) SetPassword(ctx context.Context, id, password string) error {
	if err := validateStruct(passwordInput{Password: password}); err != nil {
		return err
	}

	hash := cryptox.UnusablePassword
	if password != "" {
		var err error
		if hash, err = cryptox.HashPassword(password); err != nil {
			return err
		}
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, id, hash); err != nil {
		return mapStoreErr(err, "set password for "+id, nil)
	}
	slogx.FromContext(ctx).Info("password changed", "user_id", id, "usable", password != "")
	return nil
}

// VerifyCredentials checks an email and password pair. Unknown emails,
// inactive users and unusable passwords all fail with ErrInvalidCredentials.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	u, err := s.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		// Keep timing in line with the known-email path.
		_ = cryptox.VerifyPassword(password, dummyHash())
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		log.Info("credential check failed", "user_id", u.ID, "error", err)
		return domain.User{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		log.Info("credential check for inactive user", "user_id", u.ID)
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}
