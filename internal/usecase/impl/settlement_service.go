package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/entity"
	domainerrors "fabquote/internal/domain/errors"
	"fabquote/internal/domain/quotation"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// settlementService implements the SettlementUsecase interface.
type settlementService struct {
	quotationRepo repository.QuotationRepository
	verifier      service.PaymentVerifier
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// SettlementServiceParams holds dependencies for SettlementService, injected by Fx.
type SettlementServiceParams struct {
	fx.In

	QuotationRepo repository.QuotationRepository
	Verifier      service.PaymentVerifier
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewSettlementService is the constructor for settlementService.
func NewSettlementService(params SettlementServiceParams) usecase.SettlementUsecase {
	return &settlementService{
		quotationRepo: params.QuotationRepo,
		verifier:      params.Verifier,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

func (srv *settlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConfirmPayment moves a Quoted quotation to Paid with a single conditional write.
func (srv *settlementService) ConfirmPayment(ctx context.Context, caller entity.Caller, id uuid.UUID, paymentReference string) (*entity.Quotation, error) {
	q, err := srv.quotationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			return nil, srv.quotationGone(ctx, id, paymentReference)
		}

		return nil, srv.settlementFailure(ctx, err, id, paymentReference)
	}

	decision := quotation.CanSettle(quotation.SettlementContext{
		IsOwner:          caller.Owns(q.OwnerID),
		Current:          q.Status,
		ExistingRef:      q.PaymentReference,
		PaymentReference: paymentReference,
	})
	if err := guardError(decision.GuardResult); err != nil {
		return nil, err
	}
	if decision.AlreadySettled {
		srv.log(ctx).Info("Payment already recorded",
			slog.String("quotation_id", id.String()),
			slog.String("payment_reference", paymentReference),
		)

		return q, nil
	}

	if err := srv.verify(ctx, q, paymentReference); err != nil {
		return nil, err
	}

	paid := entity.StatusPaid
	patch := entity.QuotationPatch{
		Status:           &paid,
		PaymentReference: &paymentReference,
	}

	if err := srv.quotationRepo.UpdateInStatus(ctx, id, entity.StatusQuoted, patch); err != nil {
		return srv.reconcileFailedWrite(ctx, caller, id, paymentReference, err)
	}

	patch.Apply(q)
	q.UpdatedAt = time.Now()

	srv.log(ctx).Info("Payment recorded",
		slog.String("quotation_id", id.String()),
		slog.String("payment_reference", paymentReference),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), newQuotationEvent(ctx, service.QuotationEventPaid, q, entity.StatusQuoted))

	return q, nil
}

// verify checks the payment with the gateway when server-side verification is enabled.
func (srv *settlementService) verify(ctx context.Context, q *entity.Quotation, paymentReference string) error {
	if srv.verifier == nil {
		return nil
	}

	result, err := srv.verifier.Verify(ctx, paymentReference)
	if err != nil {
		srv.log(ctx).Error("Failed to verify payment",
			slog.String("quotation_id", q.ID.String()),
			slog.String("payment_reference", paymentReference),
			slog.Any("error", err),
		)

		return domainerrors.NewDependencyError(err, "verify payment "+paymentReference)
	}
	if result == nil {
		return nil
	}

	switch {
	case !result.Approved:
		return domainerrors.ErrPaymentNotVerified.WithDetails("payment status is " + result.Status)
	case result.ExternalReference != q.ID.String():
		return domainerrors.ErrPaymentNotVerified.WithDetails("payment belongs to another order")
	case q.Total == nil || !result.Amount.Equal(*q.Total):
		return domainerrors.ErrPaymentNotVerified.WithDetails("payment amount does not match the quoted total")
	case q.Currency != nil && result.Currency != "" && result.Currency != string(*q.Currency):
		return domainerrors.ErrPaymentNotVerified.WithDetails("payment currency does not match the quoted currency")
	}

	return nil
}

// reconcileFailedWrite decides the outcome of a settlement write that affected no row.
// A row that moved on is re-read so a retried confirmation still succeeds.
func (srv *settlementService) reconcileFailedWrite(ctx context.Context, caller entity.Caller, id uuid.UUID, paymentReference string, writeErr error) (*entity.Quotation, error) {
	switch {
	case errors.Is(writeErr, repository.ErrQuotationNotFound):
		return nil, srv.quotationGone(ctx, id, paymentReference)
	case !errors.Is(writeErr, repository.ErrStatusMismatch):
		return nil, srv.settlementFailure(ctx, writeErr, id, paymentReference)
	}

	current, err := srv.quotationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuotationNotFound) {
			return nil, srv.quotationGone(ctx, id, paymentReference)
		}

		return nil, srv.settlementFailure(ctx, err, id, paymentReference)
	}

	decision := quotation.CanSettle(quotation.SettlementContext{
		IsOwner:          caller.Owns(current.OwnerID),
		Current:          current.Status,
		ExistingRef:      current.PaymentReference,
		PaymentReference: paymentReference,
	})
	if decision.AlreadySettled {
		return current, nil
	}
	if err := guardError(decision.GuardResult); err != nil {
		return nil, err
	}

	// Back in Quoted after a concurrent move; report it rather than retry.
	return nil, domainerrors.ErrInvalidState.WithDetails("quotation status changed concurrently")
}

// settlementFailure logs the payment reference and wraps the failure for manual reconciliation.
func (srv *settlementService) settlementFailure(ctx context.Context, err error, id uuid.UUID, paymentReference string) error {
	srv.log(ctx).Error("Failed to record payment",
		slog.String("quotation_id", id.String()),
		slog.String("payment_reference", paymentReference),
		slog.Any("error", err),
	)

	return domainerrors.NewSettlementError(err, id.String(), paymentReference)
}

// quotationGone reports a payment for a quotation that no longer exists, typically one
// cancelled while the customer was paying. The reference is logged and returned so
// the charge can be refunded by hand.
func (srv *settlementService) quotationGone(ctx context.Context, id uuid.UUID, paymentReference string) error {
	srv.log(ctx).Error("Payment received for a missing quotation",
		slog.String("quotation_id", id.String()),
		slog.String("payment_reference", paymentReference),
	)

	return domainerrors.ErrQuotationNotFound.WithDetails("payment_reference=" + paymentReference)
}
