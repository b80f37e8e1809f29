package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/quotation"
	"fabquote/internal/domain/repository"
	"fabquote/internal/domain/service"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"
	"fabquote/internal/util"

	"go.uber.org/fx"
)

// sweepService implements the SweepUsecase interface.
type sweepService struct {
	quotationRepo repository.QuotationRepository
	objectStore   service.ObjectStore
	logger        *slog.Logger
}

// SweepServiceParams holds dependencies for SweepService, injected by Fx.
type SweepServiceParams struct {
	fx.In

	QuotationRepo repository.QuotationRepository
	ObjectStore   service.ObjectStore
	Logger        *slog.Logger
}

// NewSweepService is the constructor for sweepService.
func NewSweepService(params SweepServiceParams) usecase.SweepUsecase {
	return &sweepService{
		quotationRepo: params.QuotationRepo,
		objectStore:   params.ObjectStore,
		logger:        params.Logger,
	}
}

func (srv *sweepService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepOrphans deletes objects in customer namespaces that are older than the grace period
// and referenced by no quotation. Uploads that were never submitted and files whose
// cancellation cleanup failed both end up here.
func (srv *sweepService) SweepOrphans(ctx context.Context, gracePeriod time.Duration) (*usecase.SweepResult, error) {
	started := time.Now()
	cutoff := started.Add(-gracePeriod)

	objects, err := srv.objectStore.List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list objects")
	}

	result := &usecase.SweepResult{}
	candidates := make([]string, 0, len(objects))
	for _, obj := range objects {
		if _, ok := quotation.OwnerOfKey(obj.Key); !ok {
			continue
		}
		result.Scanned++
		if obj.ModTime.Before(cutoff) {
			candidates = append(candidates, obj.Key)
		}
	}

	if len(candidates) == 0 {
		return result, nil
	}

	referenced, err := srv.quotationRepo.ReferencedFilePaths(ctx, candidates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check referenced files")
	}

	inUse := make(map[string]struct{}, len(referenced))
	for _, path := range referenced {
		inUse[path] = struct{}{}
	}

	for _, key := range candidates {
		if _, ok := inUse[key]; ok {
			continue
		}

		if err := srv.objectStore.Delete(ctx, key); err != nil && !errors.Is(err, service.ErrObjectNotFound) {
			result.Failed++
			srv.log(ctx).Warn("Failed to delete orphaned object", slog.String("path", key), slog.Any("error", err))

			continue
		}
		result.Deleted++
	}

	srv.log(ctx).Info("Orphan sweep finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("deleted", result.Deleted),
		slog.Int("failed", result.Failed),
		slog.String("duration", util.FormatDuration(time.Since(started))),
	)

	return result, nil
}
