package repository

import (
	"context"
	"errors"

	"connect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no profile exists for the given account.
var ErrProfileNotFound = errors.New("profile not found")

// ErrProfileExists is returned when a second profile is inserted for an
// account that already has one.
var ErrProfileExists = errors.New("profile already exists")

// ProfileRepository defines persistence operations for extended profiles.
type ProfileRepository interface {
	// FindByUserID retrieves the profile owned by the given account,
	// joined with the owner's public fields.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Create persists a new profile. At most one profile exists per account;
	// a second insert for the same account fails.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update overwrites the stored profile with the given state, replacing
	// its availability windows.
	Update(ctx context.Context, profile *entity.Profile) error

	// DeleteByUserID removes the account's profile. Returns
	// ErrProfileNotFound when none exists.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// Search returns profiles matching the ANDed filter clauses, each joined
	// with its owner's public fields. An empty filter returns all profiles.
	Search(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error)
}
