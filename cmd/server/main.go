package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/common/logger"
	"ordersnapr.app/server/common/otel"
	"ordersnapr.app/server/core/config"
	"ordersnapr.app/server/core/db"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/bus"
	"ordersnapr.app/server/internal/http/middleware"
	httprouter "ordersnapr.app/server/internal/http/router"
	"ordersnapr.app/server/internal/service"
	"ordersnapr.app/server/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "ordersnapr starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	if err := database.RunMigrations(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to run migrations", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())

	evaluator := access.NewEvaluator(stores.Profiles())
	flagCache := access.NewFlagCache(stores.OrgFeatures(), cfg.FlagCache.SoftTTL, cfg.FlagCache.HardTTL)
	flagCache.Start()
	defer flagCache.Stop()
	gate := access.NewGate(evaluator, flagCache)

	var publisher bus.Publisher = bus.NoopPublisher{}
	var subscriber *bus.Subscriber
	if cfg.Bus.Enabled() {
		redisOpts, err := redis.ParseURL(cfg.Bus.RedisURL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "redis connected", "channel", cfg.Bus.Channel)

		publisher = bus.NewRedisPublisher(redisClient, cfg.Bus.Channel, slog.Default())
		subscriber = bus.NewSubscriber(redisClient, cfg.Bus.Channel, flagCache, slog.Default())
		subscriber.Start(ctx)
	} else {
		slog.InfoContext(ctx, "flag invalidation bus disabled (no redis url configured)")
	}

	services := service.NewServices(
		stores,
		service.NewTxRunner(database),
		gate,
		publisher,
		cfg.WorkOS,
		cfg.DashboardURL,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if subscriber != nil {
		if err := subscriber.Close(); err != nil {
			slog.ErrorContext(shutdownCtx, "bus subscriber shutdown error", "error", err)
		}
	}
	if err := publisher.Close(); err != nil {
		slog.ErrorContext(shutdownCtx, "bus publisher shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		DashboardURL: cfg.DashboardURL,
		IsProduction: cfg.IsProduction(),
		AdminAPIKey:  cfg.AdminAPIKey,
	})

	return router
}

const banner = `
 ██████╗ ██████╗ ██████╗ ███████╗██████╗ ███████╗███╗   ██╗ █████╗ ██████╗ ██████╗
██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔════╝████╗  ██║██╔══██╗██╔══██╗██╔══██╗
██║   ██║██████╔╝██║  ██║█████╗  ██████╔╝███████╗██╔██╗ ██║███████║██████╔╝██████╔╝
██║   ██║██╔══██╗██║  ██║██╔══╝  ██╔══██╗╚════██║██║╚██╗██║██╔══██║██╔═══╝ ██╔══██╗
╚██████╔╝██║  ██║██████╔╝███████╗██║  ██║███████║██║ ╚████║██║  ██║██║     ██║  ██║
 ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝     ╚═╝  ╚═╝
`
