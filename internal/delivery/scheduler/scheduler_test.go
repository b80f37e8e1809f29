package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"
	mockUC "fabquote/internal/mocks/usecase"
	"fabquote/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConfig(schedule string) *config.Config {
	return &config.Config{Sweeper: &config.SweeperConfig{
		Enabled:     true,
		Schedule:    schedule,
		GracePeriod: 24 * time.Hour,
	}}
}

func TestNewScheduler_RejectsInvalidSchedule(t *testing.T) {
	_, err := NewScheduler(SchedulerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     newTestConfig("every now and then"),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweepUC: mockUC.NewMockSweepUsecase(t),
	})

	assert.Error(t, err)
}

func TestCronScheduler_SweepRunsWithRequestScope(t *testing.T) {
	sweepUC := mockUC.NewMockSweepUsecase(t)
	lc := fxtest.NewLifecycle(t)

	d, err := NewScheduler(SchedulerParams{
		Lc:      lc,
		Cfg:     newTestConfig("0 3 * * *"),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweepUC: sweepUC,
	})
	require.NoError(t, err)

	sweepUC.EXPECT().
		SweepOrphans(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) != "" && deliverycontext.GetLogger(ctx) != nil
		}), 24*time.Hour).
		Return(&usecase.SweepResult{Scanned: 3, Deleted: 1}, nil).
		Once()
	sweepUC.EXPECT().SweepOrphans(mock.Anything, mock.Anything).Return(nil, errors.New("bucket unavailable")).Once()

	s := d.(*cronScheduler)
	s.sweep()
	s.sweep()

	lc.RequireStart()
	lc.RequireStop()
}

func TestCronScheduler_DisabledServesNothing(t *testing.T) {
	cfg := newTestConfig("not parsed when disabled")
	cfg.Sweeper.Enabled = false

	d, err := NewScheduler(SchedulerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		SweepUC: mockUC.NewMockSweepUsecase(t),
	})
	require.NoError(t, err)

	assert.NoError(t, d.Serve(context.Background()))
}
