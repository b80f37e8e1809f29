// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"fabquote/config"
	"fabquote/internal/delivery"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/domain/lifecycle"
	"fabquote/internal/errors"
	"fabquote/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type cronScheduler struct {
	cron        *cron.Cron
	enabled     bool
	schedule    string
	gracePeriod time.Duration
	sweepUC     usecase.SweepUsecase
	logger      *slog.Logger
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// NewScheduler creates the cron runner for the orphaned object sweep.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	cronLogger := &slogCronLogger{logger: params.Logger}
	s := &cronScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		enabled:     params.Cfg.Sweeper.Enabled,
		schedule:    params.Cfg.Sweeper.Schedule,
		gracePeriod: params.Cfg.Sweeper.GracePeriod,
		sweepUC:     params.SweepUC,
		logger:      params.Logger,
	}

	if s.enabled {
		if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
			return nil, errors.Wrapf(err, "invalid sweeper schedule %q", s.schedule)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve blocks running scheduled jobs until the scheduler is stopped.
func (s *cronScheduler) Serve(_ context.Context) error {
	if !s.enabled {
		s.logger.Info("Sweeper scheduler disabled")

		return nil
	}

	s.logger.Info("Starting sweeper scheduler",
		slog.String("schedule", s.schedule),
		slog.Duration("grace_period", s.gracePeriod),
	)
	s.cron.Run()

	return nil
}

func (s *cronScheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()
	ctx, logger := deliverycontext.WithScope(ctx, s.logger, deliverycontext.NewRequestID(), slog.String("job", "orphan_sweep"))

	if _, err := s.sweepUC.SweepOrphans(ctx, s.gracePeriod); err != nil {
		logger.Error("Orphan sweep failed", slog.Any("error", err))
	}
}

// stop waits for a running job to finish, bounded by the shutdown timeout.
func (s *cronScheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down sweeper scheduler")

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.WithStack(shutdownCtx.Err())
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[cron] "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[cron] "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
