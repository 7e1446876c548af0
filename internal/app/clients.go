// Package app provides external client initialization.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/circuitbreaker"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

// CarrierComponents holds the carrier client and its circuit breaker.
type CarrierComponents struct {
	Carrier        venipak.API
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeCarrier builds the Venipak client wrapped in a circuit
// breaker so a carrier outage stops hammering their API.
func InitializeCarrier(cfg config.VenipakConfig) *CarrierComponents {
	opts := []venipak.ClientOption{
		venipak.WithHTTPClient(&http.Client{Timeout: 15 * time.Second}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, venipak.WithBaseURL(cfg.BaseURL))
	}
	client := venipak.NewClient(cfg.APIKey, cfg.Username, cfg.Password, opts...)

	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Cooldown:         cfg.CircuitBreakerCooldown,
		Name:             "venipak",
	})

	return &CarrierComponents{
		Carrier:        &carrierWithCircuitBreaker{carrier: client, cb: cb},
		CircuitBreaker: cb,
	}
}

// carrierWithCircuitBreaker wraps a venipak.API with a circuit breaker.
// All carrier calls propagate failures; the callers decide how to
// degrade (quotes fall back, pickup listings go empty).
type carrierWithCircuitBreaker struct {
	carrier venipak.API
	cb      *circuitbreaker.CircuitBreaker
}

func (w *carrierWithCircuitBreaker) CreateShipment(ctx context.Context, shipment venipak.Shipment) (model.Shipment, error) {
	var result model.Shipment
	err := w.cb.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = w.carrier.CreateShipment(ctx, shipment)
		return innerErr
	})
	return result, err
}

func (w *carrierWithCircuitBreaker) TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error) {
	var result []model.TrackingEvent
	err := w.cb.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = w.carrier.TrackShipment(ctx, trackingNumber)
		return innerErr
	})
	return result, err
}

func (w *carrierWithCircuitBreaker) ListPickupPoints(ctx context.Context, filter venipak.PickupPointFilter) ([]model.PickupPoint, error) {
	var result []model.PickupPoint
	err := w.cb.Execute(ctx, func() error {
		var innerErr error
		result, innerErr = w.carrier.ListPickupPoints(ctx, filter)
		return innerErr
	})
	return result, err
}
