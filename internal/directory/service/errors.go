package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/directory/internal/directory/store"
)

var (
	ErrNotFound = errors.New("not found")

	ErrDuplicateEmail          = errors.New("email already registered")
	ErrDuplicateGroupSlug      = errors.New("group slug already in use")
	ErrDuplicateResponsibility = errors.New("responsibility slug already in use")
	ErrDuplicateMembership     = errors.New("user is already a member of this group")
	ErrDuplicateRole           = errors.New("membership already holds this responsibility")

	ErrResponsibilityUnavailable = errors.New("responsibility is not available for assignment")
	ErrInvalidCredentials        = errors.New("invalid credentials")
)

// mapStoreErr lifts store errors into service errors, keeping the original
// in the chain. dup is used for uniqueness violations.
func mapStoreErr(err error, what string, dup error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case dup != nil && errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %w", dup, err)
	case errors.Is(err, store.ErrReference):
		return fmt.Errorf("%s: %w: %w", what, ErrNotFound, err)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
