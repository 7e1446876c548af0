// Package http provides the HTTP transport layer of the checkout
// service: handlers, routing and response shaping.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/i18n"
	"github.com/ScriptVenture/checkout-service/internal/middleware"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// ShippingHandler exposes rate quoting, shipment registration and
// tracking endpoints.
type ShippingHandler struct {
	shipping service.ShippingService
	logging  service.LoggingService
}

// NewShippingHandler creates a ShippingHandler.
func NewShippingHandler(shipping service.ShippingService, logging service.LoggingService) *ShippingHandler {
	return &ShippingHandler{shipping: shipping, logging: logging}
}

// QuoteRate handles POST /api/rates requests.
//
// @Summary      Quote shipping for a cart
// @Description  Derives a package from the cart items and prices it for the destination and service level. Quoting never fails: internal errors degrade to the static default rate so checkout is not blocked.
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRateRequest true "Cart and destination"
// @Success      200 {object} dto.SuccessResponse "Shipping quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rates [post]
func (h *ShippingHandler) QuoteRate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRateRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	quote := h.shipping.QuoteRate(c.Request.Context(), *req)
	builder.SuccessOK(quote)
}

// CreateShipment handles POST /api/shipments requests.
//
// @Summary      Register a shipment with the carrier
// @Description  Creates a carrier shipment for a paid order. Pickup point and locker deliveries require a pickup_point_id. Supports idempotency via the Idempotency-Key header.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Param        request body dto.CreateShipmentRequest true "Order, items and receiver"
// @Success      201 {object} dto.SuccessResponse "Registered shipment"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - carrier unavailable"
// @Router       /api/shipments [post]
func (h *ShippingHandler) CreateShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateShipmentRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	shipment, err := h.shipping.CreateShipment(c.Request.Context(), *req)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
			return
		}
		middleware.AuditLogError(h.logging, c, "create_shipment", "Carrier shipment registration failed", err, map[string]interface{}{
			"order_id": req.OrderID,
		})
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCarrierUnavailable, err)
		return
	}

	middleware.AuditLog(h.logging, c, "create_shipment", "Carrier shipment registered", map[string]interface{}{
		"order_id":        req.OrderID,
		"tracking_number": shipment.TrackingNumber,
	})
	builder.SuccessCreated(shipment)
}

// TrackShipment handles GET /api/shipments/:number requests.
//
// @Summary      Track a shipment
// @Description  Returns carrier scan events for a tracking number.
// @Tags         Shipments
// @Produce      json
// @Param        number path string true "Tracking number"
// @Success      200 {object} dto.SuccessResponse "Tracking events"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - carrier unavailable"
// @Router       /api/shipments/{number} [get]
func (h *ShippingHandler) TrackShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	number := c.Param("number")
	if number == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	events, err := h.shipping.TrackShipment(c.Request.Context(), number)
	if err != nil {
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCarrierUnavailable, err)
		return
	}

	builder.SuccessOK(events)
}
