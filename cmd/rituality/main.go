package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"rituality/config"
	"rituality/internal/delivery"
	"rituality/internal/delivery/http"
	"rituality/internal/delivery/http/middleware"
	"rituality/internal/delivery/http/router/handler"
	"rituality/internal/domain/repository"
	"rituality/internal/infra/auth"
	"rituality/internal/infra/email"
	logs "rituality/internal/infra/log"
	"rituality/internal/infra/notification"
	"rituality/internal/infra/persistence/postgres"
	"rituality/internal/infra/search"
	"rituality/internal/infra/storage"
	"rituality/internal/usecase/impl"

	"go.uber.org/fx"
)

const deviceReapInterval = 24 * time.Hour

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			startDeviceReaper,
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
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewVerificationRepository,
			postgres.NewPropertyRepository,
			postgres.NewRequestRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			email.NewMailer,
			search.New,
			storage.New,
			notification.NewPushSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewHomeownerService,
			impl.NewProviderService,
			impl.NewRequestService,
			impl.NewSearchService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewHomeownerHandler,
			handler.NewProviderHandler,
			handler.NewRequestHandler,
			handler.NewSearchHandler,
			handler.NewUploadHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

// startDeviceReaper periodically deletes device sessions whose refresh
// tokens expired; revoked-but-unexpired rows stay for audit.
func startDeviceReaper(lc fx.Lifecycle, logger *slog.Logger, deviceRepo repository.DeviceRepository) {
	reapCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go reapExpiredDevices(reapCtx, logger, deviceRepo)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

func reapExpiredDevices(ctx context.Context, logger *slog.Logger, deviceRepo repository.DeviceRepository) {
	ticker := time.NewTicker(deviceReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := deviceRepo.DeleteExpired(ctx); err != nil {
				logger.Warn("Failed to delete expired device sessions", slog.Any("error", err))
			}
		}
	}
}
