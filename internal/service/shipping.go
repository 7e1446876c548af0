package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/metrics"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

// ShippingService quotes rates and manages carrier shipments.
type ShippingService interface {
	// QuoteRate prices a cart. It never fails: any internal error
	// degrades to the static default quote so checkout is not blocked.
	QuoteRate(ctx context.Context, req dto.QuoteRateRequest) model.RateQuote

	// CreateShipment registers a shipment with the carrier.
	CreateShipment(ctx context.Context, req dto.CreateShipmentRequest) (model.Shipment, error)

	// TrackShipment returns carrier scan events for a tracking number.
	TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error)
}

// ShippingServiceImpl implements ShippingService.
type ShippingServiceImpl struct {
	builder PackageBuilder
	engine  RateEngine
	carrier venipak.API
	sender  config.SenderConfig
}

// NewShippingService creates a shipping service.
func NewShippingService(builder PackageBuilder, engine RateEngine, carrier venipak.API, sender config.SenderConfig) ShippingService {
	return &ShippingServiceImpl{
		builder: builder,
		engine:  engine,
		carrier: carrier,
		sender:  sender,
	}
}

// QuoteRate derives the package and prices it. Errors are logged and
// replaced by the default quote.
func (s *ShippingServiceImpl) QuoteRate(ctx context.Context, req dto.QuoteRateRequest) model.RateQuote {
	start := time.Now()

	pkg := s.builder.BuildPackage(req.Items)
	quote, err := s.engine.Quote(pkg, req.DestinationCountry, req.ServiceCode)
	if err != nil {
		log.Warn().
			Err(err).
			Str("destination", req.DestinationCountry).
			Str("service_code", req.ServiceCode).
			Msg("Rate quote failed, applying default rate")
		metrics.RecordRateQuote(time.Since(start), "fallback")
		return DefaultQuote(req.ServiceCode)
	}

	metrics.RecordRateQuote(time.Since(start), "success")
	return quote
}

// CreateShipment builds the carrier shipment from the derived package,
// the configured sender and the request's consignee, then registers it.
func (s *ShippingServiceImpl) CreateShipment(ctx context.Context, req dto.CreateShipmentRequest) (model.Shipment, error) {
	pkg := s.builder.BuildPackage(req.Items)

	attributes := venipak.Attributes{Comment: req.Comment}
	switch req.ServiceCode {
	case model.ServiceExpress:
		attributes.DeliveryType = "express"
	case model.ServicePickupPoint, model.ServiceLocker:
		if req.PickupPointID == "" {
			return model.Shipment{}, fmt.Errorf("pickup point id is required for %s delivery", req.ServiceCode)
		}
		attributes.ShipmentType = "pickup_point"
		attributes.PickupPointID = req.PickupPointID
	}

	shipment := venipak.Shipment{
		Consignee: venipak.Party{
			Name:        req.Consignee.Name,
			Company:     req.Consignee.Company,
			Country:     req.Consignee.Country,
			City:        req.Consignee.City,
			Address:     req.Consignee.Address,
			PostalCode:  req.Consignee.PostalCode,
			ContactTel:  req.Consignee.Phone,
			ContactMail: req.Consignee.Email,
		},
		Consignor: venipak.Party{
			Name:        s.sender.Name,
			Company:     s.sender.Company,
			Country:     s.sender.Country,
			City:        s.sender.City,
			Address:     s.sender.Address,
			PostalCode:  s.sender.PostalCode,
			ContactTel:  s.sender.Phone,
			ContactMail: s.sender.Email,
		},
		Attributes: attributes,
		Packs: []venipak.ParcelXML{{
			Weight: pkg.WeightKg,
			Volume: pkg.Box.VolumeCm3() / 1e6,
			Length: pkg.Box.LengthCm,
			Width:  pkg.Box.WidthCm,
			Height: pkg.Box.HeightCm,
			DocNo:  req.OrderID,
		}},
	}

	created, err := s.carrier.CreateShipment(ctx, shipment)
	if err != nil {
		return model.Shipment{}, fmt.Errorf("create shipment for order %s: %w", req.OrderID, err)
	}

	log.Info().
		Str("order_id", req.OrderID).
		Str("tracking_number", created.TrackingNumber).
		Msg("Shipment registered with carrier")

	return created, nil
}

// TrackShipment proxies carrier tracking.
func (s *ShippingServiceImpl) TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error) {
	return s.carrier.TrackShipment(ctx, trackingNumber)
}
