package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"fabquote/config"
	"fabquote/internal/domain/lifecycle"
	"fabquote/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval   = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the quotation database. The connection is pinged on start and
// pool contention is reported while the process runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes (cancel, settle) open their own transactions
	// through TransactionManager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(params.Logger, sqlDB, poolMonitorInterval)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

type poolStatsSource interface {
	Stats() sql.DBStats
}

// poolMonitor logs when requests had to wait for a pooled connection.
type poolMonitor struct {
	logger   *slog.Logger
	source   poolStatsSource
	interval time.Duration
	prev     sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, source poolStatsSource, interval time.Duration) *poolMonitor {
	return &poolMonitor{
		logger:   logger,
		source:   source,
		interval: interval,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.prev = m.source.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check compares the current stats with the previous sample.
func (m *poolMonitor) check(ctx context.Context) {
	cur := m.source.Stats()
	defer func() { m.prev = cur }()

	waits := cur.WaitCount - m.prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - m.prev.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
