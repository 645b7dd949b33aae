package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-dashboard/internal/api/http"
	"github.com/spec-kit/helpdesk-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/calendar"
	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/events"
	"github.com/spec-kit/helpdesk-dashboard/internal/observability"
	"github.com/spec-kit/helpdesk-dashboard/internal/persistence"
	"github.com/spec-kit/helpdesk-dashboard/internal/pipeline"
	"github.com/spec-kit/helpdesk-dashboard/internal/provider/movidesk"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	"github.com/spec-kit/helpdesk-dashboard/internal/sla"
	"github.com/spec-kit/helpdesk-dashboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	var cache pipeline.SnapshotCache
	if cfg.Dashboard.CacheBackend == "redis" && redis.Client != nil {
		cache = pipeline.NewRedisCache(redis.Client, cfg.Dashboard.SnapshotTTL())
	} else {
		cache = pipeline.NewMemoryCache()
	}

	pipe := pipeline.New(pipeline.Dependencies{
		Cache:      cache,
		Dispatcher: dispatcher,
		Logger:     logger,
		Metrics:    metrics,
	})

	movideskClient := movidesk.NewClient(cfg.Movidesk, logger)
	tracker := sla.NewTracker(calendar.DefaultWorkWeek(), sla.NewClassifier())

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	authService := service.NewAuthService(*cfg, userRepo)
	dashboardService := service.NewDashboardService(movideskClient, pipe)
	slaService := service.NewSLAService(movideskClient, tracker)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notificationService.RegisterHandlers()

	refreshWorker := worker.NewRefreshWorker(
		dashboardService,
		cfg.Movidesk.Teams,
		cfg.Dashboard.RefreshCron,
		cfg.Movidesk.Timeout(),
		logger,
	)
	if err := refreshWorker.Start(); err != nil {
		logger.Fatal("failed to start refresh worker", zap.Error(err))
	}
	defer refreshWorker.Stop()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(authService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		SLA:            handlers.NewSLAHandler(slaService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
