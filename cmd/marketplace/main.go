package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/api"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/cache"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/persistence/postgres"
	"marketplace/internal/infra/pubsub"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		pubsub.Module,
		fx.Invoke(
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
		cache.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewShopRepository,
			newCategoryRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewVoteRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newCategoryRepository puts the redis slug cache in front of the store.
func newCategoryRepository(db *gorm.DB, slugCache *cache.Cache, logger *slog.Logger) repository.CategoryRepository {
	return cache.NewCachedCategoryRepository(postgres.NewCategoryRepository(db), slugCache, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newMetricsRecorder,
		),
	)
}

func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCategoryService,
			impl.NewShopService,
			impl.NewPostService,
			impl.NewVoteService,
			impl.NewCommentService,
			impl.NewSubscriptionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewShopHandler,
			handler.NewPostHandler,
			handler.NewVoteHandler,
			handler.NewCommentHandler,
			handler.NewSubscriptionHandler,
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
