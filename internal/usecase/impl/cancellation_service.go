package impl

import (
	"context"
	"log/slog"
	"time"

	"fabquote/config"
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

const defaultFileDeleteTimeout = 10 * time.Second

// cancellationService implements the CancellationUsecase interface.
type cancellationService struct {
	txManager     repository.TransactionManager
	objectStore   service.ObjectStore
	publisher     service.EventPublisher
	deleteTimeout time.Duration
	logger        *slog.Logger
}

// CancellationServiceParams holds dependencies for CancellationService, injected by Fx.
type CancellationServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ObjectStore service.ObjectStore
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCancellationService is the constructor for cancellationService.
func NewCancellationService(params CancellationServiceParams) usecase.CancellationUsecase {
	srv := &cancellationService{
		txManager:     params.TxManager,
		objectStore:   params.ObjectStore,
		publisher:     params.Publisher,
		deleteTimeout: defaultFileDeleteTimeout,
		logger:        params.Logger,
	}
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.DeleteTimeout > 0 {
		srv.deleteTimeout = params.Config.Storage.DeleteTimeout
	}

	return srv
}

func (srv *cancellationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Cancel removes the design file and then deletes the quotation.
// The row stays locked from the status check to the delete, so a concurrent
// payment confirmation either completes first or finds the row gone.
func (srv *cancellationService) Cancel(ctx context.Context, caller entity.Caller, id uuid.UUID) error {
	var cancelled *entity.Quotation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quotationRepo := repoFactory.NewQuotationRepository()

		q, err := quotationRepo.FindByID(ctx, id)
		if err != nil {
			return quotationStoreError(err, "find quotation")
		}

		err = guardError(quotation.CanCancel(quotation.CancelContext{
			IsOwner: caller.Owns(q.OwnerID),
			Current: q.Status,
		}))
		if err != nil {
			return err
		}

		// 1. Lock the row while it is still cancellable
		if err := quotationRepo.ClaimInStatus(ctx, id, quotation.CancellableStatuses); err != nil {
			return quotationStoreError(err, "claim quotation")
		}

		// 2. Remove the design file; a leftover object is swept later
		if q.HasFile() {
			if err := srv.deleteFile(ctx, *q.FilePath); err != nil && !errors.Is(err, service.ErrObjectNotFound) {
				srv.log(ctx).Warn("Failed to delete design file, continuing with cancellation",
					slog.String("quotation_id", id.String()),
					slog.String("path", *q.FilePath),
					slog.Any("error", err),
				)
			}
		}

		// 3. Delete the row
		if err := quotationRepo.DeleteInStatus(ctx, id, quotation.CancellableStatuses); err != nil {
			return quotationStoreError(err, "delete quotation")
		}

		cancelled = q

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}

		return domainerrors.NewDependencyError(err, "cancel quotation")
	}

	srv.log(ctx).Info("Quotation cancelled", slog.String("quotation_id", id.String()))

	publishEvent(ctx, srv.publisher, srv.log(ctx), newQuotationEvent(ctx, service.QuotationEventCancelled, cancelled, cancelled.Status))

	return nil
}

// deleteFile runs while the row lock is held, so a slow bucket must not stall
// settlements waiting on the same row.
func (srv *cancellationService) deleteFile(ctx context.Context, path string) error {
	deleteCtx, cancel := context.WithTimeout(ctx, srv.deleteTimeout)
	defer cancel()

	return srv.objectStore.Delete(deleteCtx, path)
}
