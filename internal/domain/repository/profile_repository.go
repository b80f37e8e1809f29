package repository

import (
	"context"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindByID retrieves a profile by identity id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// CreateIfAbsent inserts the profile unless one already exists for the identity.
	CreateIfAbsent(ctx context.Context, profile *entity.Profile) error

	// UpdateDetails changes the owner-editable fields.
	UpdateDetails(ctx context.Context, id uuid.UUID, fullName, phone string) error

	// MarkVerified flips an unverified profile to verified.
	// It reports false when the profile was already verified.
	MarkVerified(ctx context.Context, id uuid.UUID) (bool, error)
}
