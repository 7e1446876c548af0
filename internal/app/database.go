// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/circuitbreaker"
	"github.com/ScriptVenture/checkout-service/internal/middleware"
	"github.com/ScriptVenture/checkout-service/internal/repository"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// DatabaseComponents holds database-backed components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	PaymentsRepo           repository.PaymentsRepositoryInterface
	LoggingService         service.LoggingService
	PaymentsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the payment and log
// repositories behind circuit breakers. Returns nil when the database is
// disabled or unreachable; the service keeps running stateless.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	paymentsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.CircuitBreakerCooldown,
		Name:             "mongodb-payments",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.CircuitBreakerCooldown,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	loggingService := service.NewLoggingService(logsRepo)

	paymentsRepo := repository.NewPaymentsRepositoryWithCircuitBreaker(repository.NewPaymentsRepository(db), paymentsCB)

	// Request log persistence goes through the bounded worker pool.
	middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())

	return &DatabaseComponents{
		DB:                     db,
		PaymentsRepo:           paymentsRepo,
		LoggingService:         loggingService,
		PaymentsCircuitBreaker: paymentsCB,
		LogsCircuitBreaker:     logsCB,
	}
}
