package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped logger, so
// queries issued while serving a request carry its request_id.
type gormSlogLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		base:          base,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold {
		return
	}
	if log := l.loggerFor(ctx); log != nil {
		log.LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
	}
}

// Trace logs failed queries, slow queries, and in debug mode every query.
// Missing rows are an expected outcome for lookups and are not logged.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	log := l.loggerFor(ctx)
	if log == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn

	var (
		level slog.Level
		msg   string
	)
	switch {
	case failed:
		level, msg = slog.LevelError, "GORM query failed"
	case slow:
		level, msg = slog.LevelWarn, "GORM slow query"
	case l.level >= logger.Info:
		level, msg = slog.LevelInfo, "GORM query"
	default:
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if failed {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	if slow {
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
	}

	log.LogAttrs(ctx, level, msg, attrs...)
}

func (l *gormSlogLogger) loggerFor(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
