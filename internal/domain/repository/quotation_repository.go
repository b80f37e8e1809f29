// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for quotation persistence.
var (
	// ErrQuotationNotFound is returned when a quotation is absent or already deleted.
	ErrQuotationNotFound = errors.New("quotation not found")
	// ErrStatusMismatch is returned when a conditional write finds the row in another status.
	ErrStatusMismatch = errors.New("quotation status changed concurrently")
	// ErrDuplicateQuotation is returned when a quotation id is reused.
	ErrDuplicateQuotation = errors.New("quotation already exists")
)

// QuotationRepository defines the interface for quotation-related database operations.
// Every write is a single conditional statement; none of them upserts.
type QuotationRepository interface {
	// Create inserts a new quotation.
	Create(ctx context.Context, quotation *entity.Quotation) error

	// FindByID retrieves a quotation by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)

	// FindAll retrieves quotations matching the filter, newest first.
	FindAll(ctx context.Context, filter entity.QuotationFilter) ([]*entity.Quotation, error)

	// UpdateInStatus applies the patch only while the row is still in the expected status.
	// It returns ErrQuotationNotFound if the row is gone and ErrStatusMismatch if it moved.
	UpdateInStatus(ctx context.Context, id uuid.UUID, expected entity.QuotationStatus, patch entity.QuotationPatch) error

	// ClaimInStatus locks the row for the rest of the transaction if it is in one of the statuses.
	ClaimInStatus(ctx context.Context, id uuid.UUID, allowed []entity.QuotationStatus) error

	// DeleteInStatus removes the row if it is in one of the statuses.
	DeleteInStatus(ctx context.Context, id uuid.UUID, allowed []entity.QuotationStatus) error

	// ReferencedFilePaths returns the subset of paths that some quotation still references.
	ReferencedFilePaths(ctx context.Context, paths []string) ([]string, error)
}
