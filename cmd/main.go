package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/arlebowski/Tiny-Time-sub003/internal/config"
	"github.com/arlebowski/Tiny-Time-sub003/internal/handler"
	"github.com/arlebowski/Tiny-Time-sub003/internal/health"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/activitysource"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/insightrecorder"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/repository"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/logging"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/metrics"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/middleware"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/projection"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	// Validate configuration
	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	scheduleMetrics, err := metrics.NewScheduleMetrics()
	if err != nil {
		slog.Error("failed to initialize schedule metrics", slog.String("error", err.Error()))
		return 1
	}

	// Initialize daily totals recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := insightrecorder.LoadConfig()
	recorder, err := insightrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize insight recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close insight recorder", slog.String("error", err.Error()))
		}
	}()

	// Initialize task queue
	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize task queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("task queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	// Initialize dependencies
	activityClient := activitysource.NewClient(cfg.ActivityAPIURL)
	activitySource := activitysource.NewCachedSource(activityClient, redisClient, cfg.Schedule.ActivityCacheTTL)

	scheduleRepo := repository.NewScheduleRepository(redisClient)
	builder := projection.NewBuilder(cfg.Schedule.Location, cfg.Schedule.MatchTolerance)

	scheduleService := schedule.NewService(
		scheduleRepo,
		activitySource,
		builder,
		taskQueue,
		recorder,
		scheduleMetrics,
		cfg.Schedule.Location,
		cfg.Schedule.ReminderLead,
	)

	if err := scheduleService.ListenRemote(ctx); err != nil {
		slog.Warn("failed to subscribe to remote schedule updates",
			slog.String("error", err.Error()),
		)
	}

	scheduleHandler := handler.NewScheduleHandler(scheduleService, cfg.Schedule.Location)
	insightsHandler := handler.NewInsightsHandler(activitySource, cfg.Schedule.Location)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      logging.Module("daily-projection"),
		TracerName:  "github.com/arlebowski/Tiny-Time-sub003/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(redisClient, activityClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/insights/:metric/average", insightsHandler.HandleAverageProfile)
		v1.GET("/insights/:metric/today", insightsHandler.HandleTodayTotal)
		v1.GET("/schedule", scheduleHandler.HandleGetSchedule)
		v1.GET("/schedule/cards", scheduleHandler.HandleGetCards)
		v1.POST("/schedule/refresh", scheduleHandler.HandleRefresh)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("timezone", cfg.Schedule.Location.String()),
			slog.Duration("reminder_lead", cfg.Schedule.ReminderLead),
			slog.Duration("match_tolerance", cfg.Schedule.MatchTolerance),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
