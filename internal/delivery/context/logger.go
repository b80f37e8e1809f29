package context

import (
	"context"
	"log/slog"
)

// KeyLogger holds the request-scoped logger.
const KeyLogger ContextKey = "logger"

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns nil when no logger was attached.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault is what usecases call: the scoped logger if there is
// one, the injected fallback otherwise.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithScope attaches requestID and a child of base tagged with it (plus any
// extra attrs) to ctx. HTTP requests, push deliveries and cron runs all
// enter the usecase layer through here.
func WithScope(ctx context.Context, base *slog.Logger, requestID string, attrs ...any) (context.Context, *slog.Logger) {
	scoped := base.With(slog.String("request_id", requestID))
	if len(attrs) > 0 {
		scoped = scoped.With(attrs...)
	}

	ctx = WithRequestID(ctx, requestID)
	ctx = WithLogger(ctx, scoped)

	return ctx, scoped
}
