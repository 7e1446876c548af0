// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/ScriptVenture/checkout-service/internal/domain/model"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidOrder is returned when a payment request misses the order
	// identifier or a positive amount.
	ErrInvalidOrder = &ValidationError{
		Field:   "order_id",
		Message: "order_id and a positive amount are required",
	}
	// ErrMissingConsignee is returned when a shipment request misses the
	// receiver address.
	ErrMissingConsignee = &ValidationError{
		Field:   "consignee",
		Message: "receiver name, address, city and country are required",
	}
)

// QuoteRateRequest represents the JSON request body for the rate quote endpoint.
//
// @Description Request to price shipping for a cart
type QuoteRateRequest struct {
	// Items are the cart lines to be packed and priced.
	Items []model.CartItem `json:"items"`
	// DestinationCountry is the ISO 3166-1 alpha-2 destination, e.g. "LT".
	DestinationCountry string `json:"destination_country" binding:"required" example:"LT"`
	// ServiceCode selects the delivery service. Defaults to STANDARD.
	ServiceCode string `json:"service_code" example:"STANDARD"`
} // @name QuoteRateRequest

// Validate performs custom validation on the request.
func (r *QuoteRateRequest) Validate() error {
	if r.DestinationCountry == "" {
		return &ValidationError{Field: "destination_country", Message: "is required"}
	}
	return nil
}

// CreatePaymentRequest represents the JSON request body for payment initiation.
//
// @Description Request to initiate a gateway payment for an order
type CreatePaymentRequest struct {
	// OrderID is the storefront order identifier.
	OrderID string `json:"order_id" binding:"required" example:"order_01HZX"`
	// AmountCents is the order total in minor currency units.
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0" example:"2599"`
	// Currency defaults to EUR.
	Currency string `json:"currency" example:"EUR"`
	// Language selects the gateway page language. Defaults to LIT.
	Language string `json:"language" example:"LIT"`
	// AcceptURL, CancelURL and CallbackURL override the configured defaults.
	AcceptURL   string `json:"accept_url,omitempty"`
	CancelURL   string `json:"cancel_url,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
} // @name CreatePaymentRequest

// Validate performs custom validation on the request.
func (r *CreatePaymentRequest) Validate() error {
	if r.OrderID == "" || r.AmountCents <= 0 {
		return ErrInvalidOrder
	}
	return nil
}

// ShipmentAddress is one side of a shipment (receiver or sender override).
type ShipmentAddress struct {
	Name       string `json:"name" example:"Jonas Jonaitis"`
	Company    string `json:"company,omitempty"`
	Address    string `json:"address" example:"Gedimino pr. 1"`
	City       string `json:"city" example:"Vilnius"`
	PostalCode string `json:"postal_code" example:"01103"`
	Country    string `json:"country" example:"LT"`
	Phone      string `json:"phone,omitempty" example:"+37060000000"`
	Email      string `json:"email,omitempty"`
}

// CreateShipmentRequest represents the JSON request body for shipment creation.
//
// @Description Request to register a shipment with the carrier
type CreateShipmentRequest struct {
	OrderID string `json:"order_id" binding:"required" example:"order_01HZX"`
	// Items are the cart lines; the package is derived from them.
	Items []model.CartItem `json:"items"`
	// Consignee is the receiver address.
	Consignee ShipmentAddress `json:"consignee" binding:"required"`
	// ServiceCode selects the delivery service. Defaults to STANDARD.
	ServiceCode string `json:"service_code" example:"STANDARD"`
	// PickupPointID targets a pickup point or locker delivery.
	PickupPointID string `json:"pickup_point_id,omitempty"`
	// Comment is printed on the carrier manifest.
	Comment string `json:"comment,omitempty"`
} // @name CreateShipmentRequest

// Validate performs custom validation on the request.
func (r *CreateShipmentRequest) Validate() error {
	if r.OrderID == "" {
		return ErrInvalidOrder
	}
	c := r.Consignee
	if c.Name == "" || c.Address == "" || c.City == "" || c.Country == "" {
		return ErrMissingConsignee
	}
	return nil
}
