package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/directory/internal/directory/store"
	"github.com/aussiebroadwan/directory/pkg/cryptox"
	"github.com/aussiebroadwan/directory/pkg/slogx"
)

const (
	DefaultSuperuserEmail = "superuser@localhost"

	superuserPasswordLength = 18
)

// SuperuserCredentials are returned once, when the default superuser is created.
type SuperuserCredentials struct {
	UserID   string
	Email    string
	Password string
}

type SuperuserService struct {
	Store store.Store
	Users *UserService
}

// EnsureSuperuser creates the default superuser with a random password
// unless a superuser already exists. It returns nil credentials when
// nothing was created.
func (s *SuperuserService) EnsureSuperuser(ctx context.Context) (*SuperuserCredentials, error) {
	log := slogx.FromContext(ctx)

	exists, err := s.Store.Users().AnySuperuser(ctx)
	if err != nil {
		return nil, fmt.Errorf("check superusers: %w", err)
	}
	if exists {
		log.Info("superuser already exists, skipping")
		return nil, nil
	}

	password, err := cryptox.GeneratePassword(superuserPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}

	u, err := s.Users.Create(ctx, NewUser{
		UserProfile: UserProfile{
			Email:         DefaultSuperuserEmail,
			GivenName:     "Super",
			FamilyName:    "User",
			FullName:      "Default Super User",
			PreferredName: "Super User",
			Locale:        "en_GB",
		},
		Password:    password,
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create superuser: %w", err)
	}

	log.Warn("default superuser created", "user_id", u.ID, "email", u.Email)
	return &SuperuserCredentials{UserID: u.ID, Email: u.Email, Password: password}, nil
}
