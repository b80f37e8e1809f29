// Package worker serves the notifier: a Pub/Sub push endpoint that turns
// quotation events into WhatsApp messages.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"fabquote/config"
	"fabquote/internal/delivery"
	"fabquote/internal/delivery/middleware"
	"fabquote/internal/delivery/worker/handler"
	"fabquote/internal/domain/lifecycle"
	"fabquote/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// Pub/Sub caps push payloads at 10MB; events are a few hundred bytes.
const maxPushBodySize = "1MB"

type notifierServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", params.PushHandler.HandlePush, echomiddleware.BodyLimit(maxPushBodySize))

	srv := &notifierServer{
		port:   params.Cfg.HTTP.Port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve blocks until the server is shut down. A clean shutdown is not an error.
func (s *notifierServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting notifier HTTP server", slog.String("host_port", hostPort))

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down notifier HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
