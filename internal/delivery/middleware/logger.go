package middleware

import (
	"log/slog"
	"strings"
	"time"

	"fabquote/config"
	deliverycontext "fabquote/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request. Outside debug
// mode only failed requests are logged; health probes are never logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasSuffix(c.Path(), "/health") {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			c.Error(err)
		}

		status := c.Response().Status
		if m.debug || status >= 400 {
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
	}
	if req.URL.RawQuery != "" {
		attrs = append(attrs, slog.String("query", req.URL.RawQuery))
	}
	if caller, ok := deliverycontext.GetCaller(c); ok {
		attrs = append(attrs,
			slog.String("caller_id", caller.ID.String()),
			slog.String("caller_role", string(caller.Role)),
		)
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
