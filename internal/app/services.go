// Package app provides service initialization.
package app

import (
	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/repository"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Shipping     service.ShippingService
	Payments     service.PaymentService
	PickupPoints service.PickupPointService
	Logging      service.LoggingService
}

// InitializeServices builds the business services on top of the
// carrier client and optional database components.
func InitializeServices(cfg config.Config, carrier *CarrierComponents, db *DatabaseComponents) *ServiceComponents {
	var paymentsRepo repository.PaymentsRepositoryInterface
	var loggingService service.LoggingService
	if db != nil {
		paymentsRepo = db.PaymentsRepo
		loggingService = db.LoggingService
	}

	builder := service.NewPackageBuilderService()
	engine := service.NewRateEngineService()

	return &ServiceComponents{
		Shipping:     service.NewShippingService(builder, engine, carrier.Carrier, cfg.Sender),
		Payments:     service.NewPaymentService(cfg.Paysera, cfg.Server, paymentsRepo),
		PickupPoints: service.NewPickupPointService(carrier.Carrier),
		Logging:      loggingService,
	}
}
