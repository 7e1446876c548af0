package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

// PickupPointService lists carrier pickup locations for the checkout
// delivery step.
type PickupPointService interface {
	// ListPickupPoints returns matching points. A carrier outage
	// yields an empty list, never an error, so the storefront can
	// still offer door delivery.
	ListPickupPoints(ctx context.Context, filter venipak.PickupPointFilter) []model.PickupPoint
}

// PickupPointServiceImpl implements PickupPointService.
type PickupPointServiceImpl struct {
	carrier venipak.API
}

// NewPickupPointService creates a pickup point service.
func NewPickupPointService(carrier venipak.API) PickupPointService {
	return &PickupPointServiceImpl{carrier: carrier}
}

// ListPickupPoints queries the carrier, degrading to an empty list on
// failure.
func (s *PickupPointServiceImpl) ListPickupPoints(ctx context.Context, filter venipak.PickupPointFilter) []model.PickupPoint {
	points, err := s.carrier.ListPickupPoints(ctx, filter)
	if err != nil {
		log.Warn().
			Err(err).
			Str("country", filter.Country).
			Msg("Pickup point listing failed, returning empty list")
		return []model.PickupPoint{}
	}
	if points == nil {
		points = []model.PickupPoint{}
	}
	return points
}
