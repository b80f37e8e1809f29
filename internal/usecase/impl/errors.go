package impl

import (
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/quotation"
	"fabquote/internal/domain/repository"
	"fabquote/internal/errors"
)

// guardError maps a refused guard to its application error.
// Forbidden verdicts carry no reason so they never reveal whether a row exists.
func guardError(result quotation.GuardResult) error {
	if result.Allowed {
		return nil
	}

	switch result.Violation {
	case quotation.ViolationValidation:
		return domainerrors.ErrValidationFailed.WithDetails(result.Reason)
	case quotation.ViolationForbidden:
		return domainerrors.ErrForbidden
	case quotation.ViolationInvalidState:
		return domainerrors.ErrInvalidState.WithDetails(result.Reason)
	case quotation.ViolationConflict:
		return domainerrors.ErrPaymentConflict.WithDetails(result.Reason)
	default:
		return domainerrors.ErrInternalError.WithDetails(result.Reason)
	}
}

// quotationStoreError maps storage gateway failures on a quotation.
func quotationStoreError(err error, operation string) error {
	switch {
	case errors.Is(err, repository.ErrQuotationNotFound):
		return domainerrors.ErrQuotationNotFound
	case errors.Is(err, repository.ErrStatusMismatch):
		return domainerrors.ErrInvalidState.WithDetails("quotation status changed concurrently")
	default:
		return domainerrors.NewDependencyError(err, operation)
	}
}
