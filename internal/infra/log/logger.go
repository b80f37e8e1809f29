package logs

import (
	"io"
	"log/slog"
	"os"

	"fabquote/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger. Every record carries the service name and
// environment so the API and the notifier can share a log sink.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Env.Debug,
	}

	var handler slog.Handler
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Env.ServiceName != "" {
		logger = logger.With(slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		logger = logger.With(slog.String("env", cfg.Env.Env))
	}

	return logger, nil
}

// parseLogLevel accepts slog level names in any case; empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	if level == "" {
		return slog.LevelInfo, nil
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "unknown log level: %s", level)
	}

	return parsed, nil
}
