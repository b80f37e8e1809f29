package repository

import (
	"context"

	"fabquote/internal/domain/entity"
)

// ContactRepository defines the interface for contact form submissions.
type ContactRepository interface {
	// Create stores a new submission.
	Create(ctx context.Context, submission *entity.ContactSubmission) error

	// FindAll retrieves submissions, newest first.
	FindAll(ctx context.Context, limit int) ([]*entity.ContactSubmission, error)
}
