// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"fabquote/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile, creating it on first sight.
	GetProfile(ctx context.Context, caller entity.Caller) (*entity.Profile, error)

	// UpdateProfile changes the caller's name and phone.
	UpdateProfile(ctx context.Context, caller entity.Caller, input *UpdateProfileInput) (*entity.Profile, error)

	// SyncVerification records the identity on first sight and marks it verified once its email is confirmed.
	SyncVerification(ctx context.Context, caller entity.Caller) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile.
type UpdateProfileInput struct {
	FullName string `json:"full_name" validate:"max=200"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
}
