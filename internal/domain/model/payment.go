package model

import "time"

// Payment statuses tracked for reconciliation.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// PaymentOrder is the result of initiating a payment with the gateway.
type PaymentOrder struct {
	// PaymentURL is the signed redirect URL for the shopper.
	PaymentURL string `json:"payment_url"`
	// OrderID is the storefront order identifier.
	OrderID string `json:"order_id"`
	// PaymentID is the internally generated payment identifier.
	PaymentID string `json:"payment_id"`
	// SessionData is the encoded request payload, kept so the
	// storefront can resume or audit the session.
	SessionData string `json:"session_data"`
}

// PaymentRecord is a stored payment as exposed to the reconciliation
// listing.
type PaymentRecord struct {
	OrderID     string    `json:"order_id"`
	PaymentID   string    `json:"payment_id"`
	Status      string    `json:"status"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Test        bool      `json:"test,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CallbackResult is the outcome of processing a gateway callback.
type CallbackResult struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id,omitempty"`
	// Paid is true only when the gateway reported status "1".
	Paid bool `json:"paid"`
	// Status is the resolved payment status (paid or failed).
	Status string `json:"status"`
	// AmountCents is the paid amount in minor units as reported by the gateway.
	AmountCents int64  `json:"amount_cents,omitempty"`
	Currency    string `json:"currency,omitempty"`
	// Test is true when the gateway delivered a test-mode callback.
	Test bool `json:"test,omitempty"`
}
