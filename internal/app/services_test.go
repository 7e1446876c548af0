package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

func TestInitializeServices(t *testing.T) {
	cfg := testConfig()
	carrier := InitializeCarrier(cfg.Venipak)

	services := InitializeServices(cfg, carrier, nil)

	assert.NotNil(t, services.Shipping)
	assert.NotNil(t, services.Payments)
	assert.NotNil(t, services.PickupPoints)
	assert.Nil(t, services.Logging)
}

func TestInitializeServicesQuoteWithoutDatabase(t *testing.T) {
	cfg := testConfig()
	cfg.Venipak.BaseURL = "http://127.0.0.1:1"
	carrier := InitializeCarrier(cfg.Venipak)

	services := InitializeServices(cfg, carrier, nil)

	// Pickup listing degrades to empty against an unreachable carrier.
	points := services.PickupPoints.ListPickupPoints(context.Background(), venipak.PickupPointFilter{Country: "LT"})
	assert.NotNil(t, points)
}

func TestInitializeDatabaseDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Database.Enabled = false

	assert.Nil(t, InitializeDatabase(cfg.Database))
}

func TestInitializeRouterRegistersCarrierBreaker(t *testing.T) {
	cfg := testConfig()
	carrier := InitializeCarrier(cfg.Venipak)
	services := InitializeServices(cfg, carrier, nil)

	components := InitializeRouter(services, carrier, nil, cfg)

	assert.NotNil(t, components.Handlers.Shipping)
	assert.NotNil(t, components.Handlers.Payments)
	assert.NotNil(t, components.Handlers.PickupPoints)
	assert.NotNil(t, components.Handlers.Health)
	assert.Equal(t, cfg.Server.RateLimit, components.Config.RateLimit)
	assert.True(t, components.Config.EnableIdempotency)
}
