package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/circleage/backend/internal/adapters/cache"
	"github.com/circleage/backend/internal/adapters/database"
	"github.com/circleage/backend/internal/adapters/events"
	"github.com/circleage/backend/internal/adapters/providers/onemap"
	"github.com/circleage/backend/internal/adapters/providers/weather"
	"github.com/circleage/backend/internal/api/handlers"
	"github.com/circleage/backend/internal/api/middleware"
	"github.com/circleage/backend/internal/api/routes"
	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	"github.com/circleage/backend/internal/infrastructure/clients/redis"
	"github.com/circleage/backend/internal/infrastructure/notifications"
	"github.com/circleage/backend/internal/infrastructure/observability"
	"github.com/circleage/backend/pkg/config"
)

func main() {
	// Load .env if present; real deployments set environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var metrics *observability.Metrics
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()

			metrics, err = observability.InitMetrics()
			if err != nil {
				log.Fatalf("Failed to initialize metrics: %v", err)
			}
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client; the application degrades gracefully
	// without caching, response caching and alert streaming
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	var cacheProvider providers.CacheProvider
	var eventBus providers.EventBus
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
		eventBus = events.NewRedisEventBus(redisClient)
	}

	// Database adapters
	userAdapter := database.NewUserAdapter(pgClient)
	medicationAdapter := database.NewMedicationAdapter(pgClient)
	contactAdapter := database.NewContactAdapter(pgClient)
	alertAdapter := database.NewAlertAdapter(pgClient)
	healthLogAdapter := database.NewHealthLogAdapter(pgClient)
	bookmarkAdapter := database.NewBookmarkAdapter(pgClient)
	reviewAdapter := database.NewReviewAdapter(pgClient)
	eventAdapter := database.NewEventAdapter(pgClient)
	buddyAdapter := database.NewBuddyAdapter(pgClient)

	// External providers
	navigationProvider := onemap.NewProvider(&cfg.OneMap, cacheProvider)
	weatherProvider := weather.NewOpenWeatherProvider(&cfg.Weather)
	smsSender := notifications.NewTwilioSender(&cfg.SMS)

	// Services
	userService := services.NewUserService(userAdapter)
	medicationService := services.NewMedicationService(medicationAdapter)
	contactService := services.NewContactService(contactAdapter)
	alertService := services.NewAlertService(contactAdapter, alertAdapter, smsSender, eventBus, metrics)
	adherenceService := services.NewAdherenceService(medicationAdapter, alertService)
	healthLogService := services.NewHealthLogService(healthLogAdapter)
	bookmarkService := services.NewBookmarkService(bookmarkAdapter)
	reviewService := services.NewReviewService(reviewAdapter)
	eventService := services.NewEventService(eventAdapter)
	buddyService := services.NewBuddyService(buddyAdapter, userAdapter)

	// HTTP layer
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
	}

	router := routes.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewMedicationHandler(medicationService, adherenceService),
		handlers.NewContactHandler(contactService),
		handlers.NewAlertHandler(alertService),
		handlers.NewNavigationHandler(navigationProvider),
		handlers.NewWeatherHandler(weatherProvider),
		handlers.NewHealthLogHandler(healthLogService),
		handlers.NewBookmarkHandler(bookmarkService),
		handlers.NewReviewHandler(reviewService),
		handlers.NewEventHandler(eventService),
		handlers.NewBuddyHandler(buddyService),
		handlers.NewStreamHandler(eventBus),
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}

	log.Println("Server stopped")
}
