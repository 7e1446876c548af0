package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/mocks"
	"github.com/ScriptVenture/checkout-service/internal/service"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

func testSender() config.SenderConfig {
	return config.SenderConfig{
		Name:       "Shop UAB",
		Address:    "Laisvės al. 10",
		City:       "Kaunas",
		PostalCode: "44240",
		Country:    "LT",
		Phone:      "+37060000000",
	}
}

func newShippingService(carrier venipak.API) service.ShippingService {
	return service.NewShippingService(
		service.NewPackageBuilderService(),
		service.NewRateEngineService(),
		carrier,
		testSender(),
	)
}

func TestShippingService_QuoteRate(t *testing.T) {
	svc := newShippingService(&mocks.MockVenipakAPI{})

	t.Run("prices a valid cart", func(t *testing.T) {
		quote := svc.QuoteRate(context.Background(), dto.QuoteRateRequest{
			Items: []model.CartItem{
				{WeightKg: 0.5, LengthCm: 10, WidthCm: 10, HeightCm: 5, UnitPriceCents: 2599, Quantity: 1},
			},
			DestinationCountry: "LT",
			ServiceCode:        model.ServiceStandard,
		})

		assert.Equal(t, int64(399), quote.PriceCents)
		assert.False(t, quote.Fallback)
	})

	t.Run("falls back to default on engine error", func(t *testing.T) {
		quote := svc.QuoteRate(context.Background(), dto.QuoteRateRequest{
			Items:              []model.CartItem{{WeightKg: 1}},
			DestinationCountry: "LITHUANIA",
		})

		assert.True(t, quote.Fallback)
		assert.Equal(t, int64(service.DefaultRateCents), quote.PriceCents)
		assert.Equal(t, model.ServiceStandard, quote.ServiceCode)
	})

	t.Run("empty cart still quotes", func(t *testing.T) {
		quote := svc.QuoteRate(context.Background(), dto.QuoteRateRequest{
			DestinationCountry: "LT",
		})

		assert.False(t, quote.Fallback)
		assert.Positive(t, quote.PriceCents)
	})
}

func TestShippingService_CreateShipment(t *testing.T) {
	req := dto.CreateShipmentRequest{
		OrderID: "order_1",
		Items: []model.CartItem{
			{WeightKg: 1.5, LengthCm: 20, WidthCm: 15, HeightCm: 10, UnitPriceCents: 2599, Quantity: 1},
		},
		Consignee: dto.ShipmentAddress{
			Name:       "Jonas Jonaitis",
			Address:    "Gedimino pr. 1",
			City:       "Vilnius",
			PostalCode: "01103",
			Country:    "LT",
		},
		ServiceCode: model.ServiceStandard,
	}

	t.Run("registers shipment with carrier", func(t *testing.T) {
		carrier := &mocks.MockVenipakAPI{}
		carrier.On("CreateShipment", mock.Anything, mock.MatchedBy(func(s venipak.Shipment) bool {
			return s.Consignee.Name == "Jonas Jonaitis" &&
				s.Consignor.Name == "Shop UAB" &&
				len(s.Packs) == 1 &&
				s.Packs[0].DocNo == "order_1"
		})).Return(model.Shipment{TrackingNumber: "V0012345678", Carrier: "venipak"}, nil)

		svc := newShippingService(carrier)

		shipment, err := svc.CreateShipment(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "V0012345678", shipment.TrackingNumber)
		carrier.AssertExpectations(t)
	})

	t.Run("express sets delivery type", func(t *testing.T) {
		carrier := &mocks.MockVenipakAPI{}
		carrier.On("CreateShipment", mock.Anything, mock.MatchedBy(func(s venipak.Shipment) bool {
			return s.Attributes.DeliveryType == "express"
		})).Return(model.Shipment{TrackingNumber: "V1"}, nil)

		expressReq := req
		expressReq.ServiceCode = model.ServiceExpress

		_, err := newShippingService(carrier).CreateShipment(context.Background(), expressReq)
		require.NoError(t, err)
		carrier.AssertExpectations(t)
	})

	t.Run("pickup point delivery targets the point", func(t *testing.T) {
		carrier := &mocks.MockVenipakAPI{}
		carrier.On("CreateShipment", mock.Anything, mock.MatchedBy(func(s venipak.Shipment) bool {
			return s.Attributes.ShipmentType == "pickup_point" &&
				s.Attributes.PickupPointID == "pp-77"
		})).Return(model.Shipment{TrackingNumber: "V2"}, nil)

		ppReq := req
		ppReq.ServiceCode = model.ServicePickupPoint
		ppReq.PickupPointID = "pp-77"

		_, err := newShippingService(carrier).CreateShipment(context.Background(), ppReq)
		require.NoError(t, err)
		carrier.AssertExpectations(t)
	})

	t.Run("pickup point delivery requires a point id", func(t *testing.T) {
		carrier := &mocks.MockVenipakAPI{}

		lockerReq := req
		lockerReq.ServiceCode = model.ServiceLocker
		lockerReq.PickupPointID = ""

		_, err := newShippingService(carrier).CreateShipment(context.Background(), lockerReq)
		assert.Error(t, err)
		carrier.AssertNotCalled(t, "CreateShipment")
	})

	t.Run("carrier error is propagated", func(t *testing.T) {
		carrier := &mocks.MockVenipakAPI{}
		carrier.On("CreateShipment", mock.Anything, mock.Anything).
			Return(model.Shipment{}, errors.New("carrier down"))

		_, err := newShippingService(carrier).CreateShipment(context.Background(), req)
		assert.ErrorContains(t, err, "carrier down")
	})
}

func TestShippingService_TrackShipment(t *testing.T) {
	carrier := &mocks.MockVenipakAPI{}
	carrier.On("TrackShipment", mock.Anything, "V0012345678").
		Return([]model.TrackingEvent{{Status: "Delivered"}}, nil)

	events, err := newShippingService(carrier).TrackShipment(context.Background(), "V0012345678")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Delivered", events[0].Status)
}
