package usecase

import (
	"context"

	"fabquote/internal/domain/entity"

	"github.com/google/uuid"
)

// SettlementUsecase reconciles payment confirmations with quotations.
type SettlementUsecase interface {
	// ConfirmPayment marks a Quoted quotation Paid with the gateway payment reference.
	// Repeating a confirmation with the same reference succeeds without writing.
	ConfirmPayment(ctx context.Context, caller entity.Caller, id uuid.UUID, paymentReference string) (*entity.Quotation, error)
}

// CancellationUsecase removes quotations that have not been paid.
type CancellationUsecase interface {
	// Cancel deletes the design file and then the quotation.
	Cancel(ctx context.Context, caller entity.Caller, id uuid.UUID) error
}
