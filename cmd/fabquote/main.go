package main

import (
	"context"
	"log/slog"
	"os"

	"fabquote/config"
	"fabquote/internal/delivery"
	"fabquote/internal/delivery/api"
	"fabquote/internal/delivery/api/middleware"
	"fabquote/internal/delivery/api/router/handler"
	"fabquote/internal/delivery/scheduler"
	"fabquote/internal/infra/auth"
	logs "fabquote/internal/infra/log"
	"fabquote/internal/infra/payment"
	"fabquote/internal/infra/persistence/postgres"
	"fabquote/internal/infra/pubsub"
	"fabquote/internal/infra/qrcode"
	"fabquote/internal/infra/storage"
	"fabquote/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewQuotationRepository,
			postgres.NewProfileRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		storage.Module,
		pubsub.Module,
		payment.Module,
		qrcode.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewQuotationService,
			impl.NewSettlementService,
			impl.NewCancellationService,
			impl.NewProfileService,
			impl.NewContactService,
			impl.NewSweepService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewQuotationHandler,
			handler.NewFileHandler,
			handler.NewAdminHandler,
			handler.NewProfileHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func migrate(db *gorm.DB) error {
	return postgres.Migrate(db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
