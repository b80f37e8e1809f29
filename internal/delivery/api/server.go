package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"fabquote/config"
	"fabquote/internal/delivery"
	apimiddleware "fabquote/internal/delivery/api/middleware"
	"fabquote/internal/delivery/api/router"
	"fabquote/internal/delivery/api/validator"
	deliverycontext "fabquote/internal/delivery/context"
	"fabquote/internal/delivery/middleware"
	"fabquote/internal/domain/lifecycle"
	"fabquote/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type storefrontServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	server      *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the storefront API server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	srv := &storefrontServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		server:      e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho applies timeouts and the middleware chain. Order matters: recover
// wraps everything, and the request id must exist before anything logs.
func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  allowedOrigins(cfg),
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))
	// Design files arrive as multipart uploads, so the limit sits well above
	// the JSON endpoints' needs.
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		return []string{"*"}
	}

	return cfg.HTTP.AllowedOrigins
}

func (s *storefrontServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{IdleTimeout: s.idleTimeout}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *storefrontServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
