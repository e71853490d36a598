package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	"github.com/tair/storefront/docs"
	cartCommand "github.com/tair/storefront/internal/cart/usecase/command"
	"github.com/tair/storefront/internal/config"
	"github.com/tair/storefront/internal/shell"
	"github.com/tair/storefront/internal/storefront"
	"github.com/tair/storefront/kafka"
	"github.com/tair/storefront/pkg/database"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/middleware"
	"github.com/tair/storefront/pkg/tracing"
)

const version = "1.0.0"

type publisher interface {
	cartCommand.EventPublisher
	Close() error
}

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("brand", cfg.Brand).
		Str("catalog_source", cfg.CatalogSource).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, version, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := connectDatabase(ctx, cfg)
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
	}

	rdb := connectRedis(ctx, cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	events := newPublisher(cfg)
	defer events.Close()

	bridge := shell.NewBridge(cfg.ShellBridgeURL, nil)

	// Initialize server with Wire DI
	server, err := storefront.InitializeServer(cfg, db, rdb, events, prometheus.DefaultRegisterer, bridge)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storefront")
	}

	consumer := startConsumer(ctx, cfg, server)
	if consumer != nil {
		defer consumer.Close()
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           newRouter(cfg, server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/").
			Msg("HTTP server started")

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	if err := server.Warmup(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Backend setup failed")
	}

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newRouter(cfg *config.Config, server *storefront.Server) http.Handler {
	router := mux.NewRouter()

	middlewareConfig := middleware.DefaultConfig(cfg.AllowedOrigins)
	middleware.Register(router, middlewareConfig)

	server.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	docs.SwaggerInfo.Host = "localhost:" + cfg.HTTPPort
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return middleware.CORS(middlewareConfig, router)
}

// connectDatabase opens PostgreSQL only when the catalog is served from it
func connectDatabase(ctx context.Context, cfg *config.Config) *gorm.DB {
	if cfg.CatalogSource != config.CatalogSourcePostgres {
		return nil
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := storefront.SeedCatalog(ctx, db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to prepare catalog tables")
	}

	logger.Logger.Info().Msg("Database initialized successfully")
	return db
}

func connectRedis(ctx context.Context, cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
	}

	logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Redis connected")
	return rdb
}

// newPublisher falls back to a no-op publisher when Kafka is not configured or unreachable
func newPublisher(cfg *config.Config) publisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Info().Msg("KAFKA_BROKERS not set, cart events are not published")
		return kafka.NoopPublisher{}
	}

	p, err := kafka.NewPublisher(cfg.KafkaBrokers)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka publisher, cart events are not published")
		return kafka.NoopPublisher{}
	}
	return p
}

// startConsumer drops cached catalog responses whenever the catalog changes upstream
func startConsumer(ctx context.Context, cfg *config.Config, server *storefront.Server) *kafka.Consumer {
	if len(cfg.KafkaBrokers) == 0 || server.Cache == nil {
		return nil
	}

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicCatalogUpdated})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create Kafka consumer")
		return nil
	}

	consumer.RegisterHandler(kafka.EventTypeCatalogUpdated, kafka.CatalogUpdatedHandler(
		func(ctx context.Context, event kafka.CatalogUpdatedEvent) error {
			logger.Info(ctx).Strs("product_ids", event.ProductIDs).Msg("Catalog updated upstream")
			return server.InvalidateCatalog(ctx)
		},
	))

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
	}
	return consumer
}
