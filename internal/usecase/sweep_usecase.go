package usecase

import (
	"context"
	"time"
)

// SweepUsecase removes uploaded objects that no quotation references.
type SweepUsecase interface {
	// SweepOrphans deletes customer objects older than the grace period that are not referenced.
	SweepOrphans(ctx context.Context, gracePeriod time.Duration) (*SweepResult, error)
}

// SweepResult summarizes one sweep.
type SweepResult struct {
	Scanned int
	Deleted int
	Failed  int
}
