package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	analyticsHttp "analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "analytics-service/internal/analytics/adapters/postgres"
	analyticsCache "analytics-service/internal/analytics/adapters/redis"
	analyticsDomain "analytics-service/internal/analytics/core/domain"
	analyticsUsecase "analytics-service/internal/analytics/core/usecase"

	eventsHttp "analytics-service/internal/events/adapters/http/fiber"
	eventsRepoPg "analytics-service/internal/events/adapters/postgres"
	eventsUsecase "analytics-service/internal/events/core/usecase"

	projectsRepoPg "analytics-service/internal/projects/adapters/postgres"
	projectsCache "analytics-service/internal/projects/adapters/redis"

	"analytics-service/internal/config"
	"analytics-service/internal/pkg/logger"
	"analytics-service/internal/pkg/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "analytics-service/docs"
)

// @title Analytics Service API
// @version 1.0
// @description Pageview ingestion and time-bucketed analytics.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Init("info", "json")
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	// DB connection
	db, err := sql.Open("postgres", cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping postgres")
	}

	// Redis is a cache only; the service keeps working without it.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, caches will miss")
	}
	pingCancel()

	// Repositories
	analyticsRepository := analyticsRepoPg.NewAnalyticsRepository(analyticsRepoPg.NewSQLDB(db))
	eventRepository := eventsRepoPg.NewEventRepository(db)
	projectReader := projectsCache.NewCachedProjectReader(
		projectsRepoPg.NewProjectRepository(db),
		rdb,
		cfg.ProjectCacheTTL,
		log,
	)
	birdseyeCache := analyticsCache.NewBirdseyeCache(rdb, cfg.BirdseyeCacheTTL)

	// Usecases
	getAnalyticsUC := analyticsUsecase.NewGetAnalyticsUseCase(
		analyticsRepository,
		analyticsUsecase.WithLogger(log),
		analyticsUsecase.WithShards(cfg.AggregationShards),
		analyticsUsecase.WithAggregationObserver(func(unit analyticsDomain.BucketUnit, took time.Duration) {
			observability.ObserveAggregation(string(unit), took)
		}),
	)
	getBirdseyeUC := analyticsUsecase.NewGetBirdseyeUseCase(
		analyticsRepository,
		birdseyeCache,
		analyticsUsecase.WithLogger(log),
	)
	storeEventUC := eventsUsecase.NewStoreEventUseCase(
		eventRepository,
		projectReader,
		eventsUsecase.WithLogger(log),
		eventsUsecase.WithIngestObserver(observability.IncIngested),
	)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))
	app.Use(observability.Middleware())

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(storeEventUC)
	app.Post("/log", eventsHandler.CreateEvent)
	app.Post("/log/bulk", eventsHandler.BulkCreateEvents)

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(getAnalyticsUC, getBirdseyeUC)
	app.Get("/log", analyticsHandler.GetAnalytics)
	app.Get("/log/birdseye", analyticsHandler.GetBirdseye)

	// ops
	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", observability.Handler())

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.Addr()).Str("env", cfg.AppEnv).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}
