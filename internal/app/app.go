// Package app wires together all storefront dependencies and runs the server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/momomonster549/ecom-macsorchids/pkg/health"
	pkgkafka "github.com/momomonster549/ecom-macsorchids/pkg/kafka"
	"github.com/momomonster549/ecom-macsorchids/pkg/middleware"
	"github.com/momomonster549/ecom-macsorchids/pkg/tracing"

	"github.com/momomonster549/ecom-macsorchids/internal/catalog/memory"
	"github.com/momomonster549/ecom-macsorchids/internal/config"
	"github.com/momomonster549/ecom-macsorchids/internal/content"
	"github.com/momomonster549/ecom-macsorchids/internal/event"
	handler "github.com/momomonster549/ecom-macsorchids/internal/handler/http"
	redisrepo "github.com/momomonster549/ecom-macsorchids/internal/repository/redis"
	"github.com/momomonster549/ecom-macsorchids/internal/service"
)

// App wires together all dependencies and runs the storefront.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	tracingCfg := tracing.DefaultConfig("storefront")
	tracingCfg.Enabled = cfg.TracingEnabled
	tracingCfg.OTLPEndpoint = cfg.TracingEndpoint
	tracingCfg.SampleRate = cfg.TracingSample
	tracingCfg.Environment = cfg.Environment
	tracingShutdown, err := tracing.InitTracer(ctx, tracingCfg)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Build the dependency graph.
	provider := memory.New(time.Duration(cfg.CatalogLatencyMS) * time.Millisecond)
	eventProducer := event.NewProducer(producer, logger)

	cartRepo := redisrepo.NewCartRepository(rdb, time.Duration(cfg.CartTTLHours)*time.Hour)
	wishlistRepo := redisrepo.NewWishlistRepository(rdb, time.Duration(cfg.WishlistTTLHours)*time.Hour)
	checkoutRepo := redisrepo.NewCheckoutRepository(rdb, time.Duration(cfg.CheckoutTTLHours)*time.Hour)

	cartService := service.NewCartService(cartRepo, provider, eventProducer, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, provider, eventProducer, logger)
	checkoutService := service.NewCheckoutService(checkoutRepo, cartService, eventProducer, logger)
	contentService := content.NewService(logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", func(ctx context.Context) error {
		return producer.Ping(ctx)
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	router := handler.NewRouter(handler.RouterDeps{
		Catalog:       provider,
		Cart:          cartService,
		Wishlist:      wishlistService,
		Checkout:      checkoutService,
		Content:       contentService,
		HealthHandler: healthHandler,
		Logger:        logger,
		CORS:          corsCfg,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
