// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/http"
)

// RouterComponents holds HTTP handlers and router configuration.
type RouterComponents struct {
	Handlers http.Handlers
	Config   http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	carrier *CarrierComponents,
	db *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if carrier != nil && carrier.CircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("venipak", carrier.CircuitBreaker)
	}
	if db != nil {
		if db.PaymentsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_payments", db.PaymentsCircuitBreaker)
		}
		if db.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", db.LogsCircuitBreaker)
		}
		if db.DB != nil {
			mongo := db.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return mongo.HealthCheck(ctx)
			}))
		}
	}

	handlers := http.Handlers{
		Shipping:     http.NewShippingHandler(services.Shipping, services.Logging),
		Payments:     http.NewPaymentsHandler(services.Payments, services.Logging),
		PickupPoints: http.NewPickupPointsHandler(services.PickupPoints),
		Health:       healthHandler,
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    services.Logging,
	}

	return &RouterComponents{
		Handlers: handlers,
		Config:   routerCfg,
	}
}
