package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/crismov/storefront/internal/cart"
	"github.com/crismov/storefront/internal/catalog"
	catalogHTTP "github.com/crismov/storefront/internal/catalog/delivery/http"
	"github.com/crismov/storefront/internal/config"
	"github.com/crismov/storefront/internal/events"
	"github.com/crismov/storefront/internal/favorites"
	"github.com/crismov/storefront/internal/identity"
	identityRepo "github.com/crismov/storefront/internal/identity/repository"
	"github.com/crismov/storefront/internal/orders"
	"github.com/crismov/storefront/internal/profile"
	"github.com/crismov/storefront/internal/reviews"
	"github.com/crismov/storefront/internal/storage"
	"github.com/crismov/storefront/pkg/logger"
	"github.com/crismov/storefront/pkg/tracing"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("storage_backend", cfg.StorageBackend).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
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

	// Pick the persistence backend
	store, err := buildStore(cfg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	store = storage.NewTracedStore(store)

	// Event publisher, Kafka when brokers are configured
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Failed to connect to Kafka")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Wire up services and handlers
	catalogProvider := catalog.NewProvider()

	reviewService := reviews.NewService(store)
	cartService := cart.NewService(store)
	favoriteService := favorites.NewService(store)
	profileService := profile.NewService(store)

	userRepository := identityRepo.NewStoreUserRepository(store)
	session := identity.NewSessionReader(userRepository)

	catalogHandler := catalogHTTP.NewCatalogHandler(catalogProvider, reviews.NewRatingAdapter(reviewService))
	cartHandler := cart.NewHandler(cartService, catalogProvider)
	favoriteHandler := favorites.NewHandler(favoriteService, catalogProvider)
	reviewHandler := reviews.NewHandler(reviewService, session)
	profileHandler := profile.NewHandler(profileService)
	authHandler := identity.InitializeAuthHandler(store)
	orderHandler := orders.InitializeOrderHandler(store, session, publisher, cartService)

	// Setup router
	router := mux.NewRouter()
	catalogHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)
	reviewHandler.RegisterRoutes(router)
	profileHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": cfg.ServiceName,
		})
	}).Methods("GET")

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: otelhttp.NewHandler(c.Handler(router), "storefront-http"),
	}

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func buildStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemoryStore(), nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client, "storefront"), nil
	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}
