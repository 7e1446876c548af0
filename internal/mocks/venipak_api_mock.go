// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

type MockVenipakAPI struct {
	mock.Mock
}

func (m *MockVenipakAPI) CreateShipment(ctx context.Context, shipment venipak.Shipment) (model.Shipment, error) {
	args := m.Called(ctx, shipment)
	return args.Get(0).(model.Shipment), args.Error(1)
}

func (m *MockVenipakAPI) TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrackingEvent), args.Error(1)
}

func (m *MockVenipakAPI) ListPickupPoints(ctx context.Context, filter venipak.PickupPointFilter) ([]model.PickupPoint, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PickupPoint), args.Error(1)
}
