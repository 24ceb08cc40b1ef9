package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/circleage/backend/internal/adapters/database"
	"github.com/circleage/backend/internal/adapters/events"
	"github.com/circleage/backend/internal/application/services"
	"github.com/circleage/backend/internal/domain/providers"
	"github.com/circleage/backend/internal/infrastructure/clients/postgres"
	"github.com/circleage/backend/internal/infrastructure/clients/redis"
	"github.com/circleage/backend/internal/infrastructure/notifications"
	"github.com/circleage/backend/internal/infrastructure/observability"
	"github.com/circleage/backend/pkg/config"
)

// Adherence sweep daemon. Runs the missed-medication check for every
// user with active medications on a fixed cron schedule.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger("circleage-scheduler", cfg.Server.Env)

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()

	var eventBus providers.EventBus
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
	} else {
		defer redisClient.Close()
		eventBus = events.NewRedisEventBus(redisClient)
	}

	medicationAdapter := database.NewMedicationAdapter(pgClient)
	contactAdapter := database.NewContactAdapter(pgClient)
	alertAdapter := database.NewAlertAdapter(pgClient)
	smsSender := notifications.NewTwilioSender(&cfg.SMS)

	alertService := services.NewAlertService(contactAdapter, alertAdapter, smsSender, eventBus, nil)
	adherenceService := services.NewAdherenceService(medicationAdapter, alertService)

	schedule := os.Getenv("ADHERENCE_SWEEP_SCHEDULE")
	if schedule == "" {
		schedule = "*/30 * * * *"
	}

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := adherenceService.Sweep(ctx); err != nil {
			log.Printf("Adherence sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Invalid sweep schedule %q: %v", schedule, err)
	}

	c.Start()
	log.Printf("Adherence scheduler started (schedule %q)", schedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Scheduler shutting down...")
	stopCtx := c.Stop()
	<-stopCtx.Done()

	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Printf("Error closing event bus: %v", err)
		}
	}
	log.Println("Scheduler stopped")
}
