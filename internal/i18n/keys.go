// Package i18n provides internationalization support for the checkout service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyInvalidSignature indicates a payment callback with a bad or missing signature.
	ErrKeyInvalidSignature = "error.invalid_signature"
	// ErrKeyPaymentFailed indicates a payment could not be initiated.
	ErrKeyPaymentFailed = "error.payment_failed"
	// ErrKeyCarrierUnavailable indicates the parcel carrier API could not be reached.
	ErrKeyCarrierUnavailable = "error.carrier_unavailable"
	// ErrKeyValidationItems indicates an invalid cart items payload.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationOrder indicates an invalid payment order payload.
	ErrKeyValidationOrder = "error.validation.order"
)

// Success message translation keys.
const (
	// SuccessKeyPaymentCreated indicates a payment was initiated successfully.
	SuccessKeyPaymentCreated = "success.payment_created"
	// SuccessKeyShipmentCreated indicates a shipment was registered with the carrier.
	SuccessKeyShipmentCreated = "success.shipment_created"
)
