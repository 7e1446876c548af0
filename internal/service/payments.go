package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ScriptVenture/checkout-service/config"
	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/metrics"
	"github.com/ScriptVenture/checkout-service/internal/paysera"
	"github.com/ScriptVenture/checkout-service/internal/repository"
)

// ErrInvalidSignature is returned when a callback fails signature
// verification. It maps to an authentication failure, not an internal
// error.
var ErrInvalidSignature = errors.New("invalid callback signature")

// PaymentService initiates gateway payments and processes callbacks.
type PaymentService interface {
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (model.PaymentOrder, error)
	// ProcessCallback verifies and decodes a gateway callback.
	// Returns ErrInvalidSignature when verification fails.
	ProcessCallback(ctx context.Context, data, ss1 string) (model.CallbackResult, error)
	// ListPendingPayments lists initiated payments that never received
	// a callback, newest first, for reconciliation.
	ListPendingPayments(ctx context.Context, limit int) ([]model.PaymentRecord, error)
}

// PaymentServiceImpl implements PaymentService against the Paysera
// protocol. The payments repository is optional; without it the
// service runs stateless.
type PaymentServiceImpl struct {
	cfg      config.PayseraConfig
	server   config.ServerConfig
	payments repository.PaymentsRepositoryInterface
}

// NewPaymentService creates a payment service. payments may be nil
// when persistence is disabled.
func NewPaymentService(cfg config.PayseraConfig, server config.ServerConfig, payments repository.PaymentsRepositoryInterface) PaymentService {
	return &PaymentServiceImpl{
		cfg:      cfg,
		server:   server,
		payments: payments,
	}
}

// CreatePayment builds the signed gateway redirect URL for an order.
// Parameter order is fixed because the signature covers the encoded
// string byte for byte.
func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest) (model.PaymentOrder, error) {
	if s.cfg.ProjectID == "" || s.cfg.SignPassword == "" {
		metrics.RecordPaymentInitiated("error")
		return model.PaymentOrder{}, fmt.Errorf("payment gateway is not configured")
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}
	language := req.Language
	if language == "" {
		language = "LIT"
	}

	acceptURL := req.AcceptURL
	if acceptURL == "" {
		acceptURL = s.server.FrontendURL + "/checkout/success"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.server.FrontendURL + "/checkout/cancel"
	}
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = s.server.BackendURL + "/api/payments/callback"
	}

	test := "0"
	if s.cfg.TestMode {
		test = "1"
	}

	params := []paysera.Param{
		{Key: "projectid", Value: s.cfg.ProjectID},
		{Key: "orderid", Value: req.OrderID},
		{Key: "lang", Value: language},
		{Key: "amount", Value: strconv.FormatInt(req.AmountCents, 10)},
		{Key: "currency", Value: currency},
		{Key: "accepturl", Value: acceptURL},
		{Key: "cancelurl", Value: cancelURL},
		{Key: "callbackurl", Value: callbackURL},
		{Key: "test", Value: test},
		{Key: "version", Value: paysera.Version},
	}

	encoded := paysera.Encode(params)
	signature := paysera.Sign(encoded, s.cfg.SignPassword)
	paymentID := uuid.NewString()

	order := model.PaymentOrder{
		PaymentURL:  paysera.BuildPaymentURL(s.cfg.GatewayURL, encoded, signature),
		OrderID:     req.OrderID,
		PaymentID:   paymentID,
		SessionData: encoded,
	}

	if s.payments != nil {
		doc := &repository.PaymentDocument{
			OrderID:     req.OrderID,
			PaymentID:   paymentID,
			Status:      model.PaymentStatusPending,
			AmountCents: req.AmountCents,
			Currency:    currency,
			Test:        s.cfg.TestMode,
		}
		if err := s.payments.Create(ctx, doc); err != nil {
			// Persistence is best-effort; the payment URL is still valid.
			log.Warn().Err(err).Str("order_id", req.OrderID).Msg("Failed to persist payment record")
		}
	}

	metrics.RecordPaymentInitiated("success")
	log.Info().
		Str("order_id", req.OrderID).
		Str("payment_id", paymentID).
		Int64("amount_cents", req.AmountCents).
		Msg("Payment initiated")

	return order, nil
}

// ProcessCallback verifies the gateway signature, decodes the payload
// and records the outcome. A signature mismatch returns
// ErrInvalidSignature without decoding anything.
func (s *PaymentServiceImpl) ProcessCallback(ctx context.Context, data, ss1 string) (model.CallbackResult, error) {
	if !paysera.ValidateCallback(data, ss1, s.cfg.SignPassword) {
		metrics.RecordPaymentCallback("invalid_signature")
		return model.CallbackResult{}, ErrInvalidSignature
	}

	callback, err := paysera.DecodeCallback(data)
	if err != nil {
		metrics.RecordPaymentCallback("decode_error")
		return model.CallbackResult{}, fmt.Errorf("decode callback: %w", err)
	}

	status := model.PaymentStatusFailed
	if callback.Paid() {
		status = model.PaymentStatusPaid
	}

	result := model.CallbackResult{
		OrderID:     callback.OrderID,
		Paid:        callback.Paid(),
		Status:      status,
		AmountCents: callback.AmountCents(),
		Currency:    callback.Currency,
		Test:        callback.IsTest(),
	}

	if s.payments != nil {
		raw := callbackRaw(data)
		if err := s.payments.UpdateStatus(ctx, callback.OrderID, status, raw); err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				// Callbacks can arrive for orders initiated before
				// persistence was enabled.
				log.Warn().Str("order_id", callback.OrderID).Msg("Callback for unknown payment record")
			} else {
				// The signature checked out but the status transition was
				// lost. Surface the failure so the handler answers non-OK
				// and the gateway redelivers the callback.
				metrics.RecordPaymentCallback("persist_error")
				log.Error().Err(err).Str("order_id", callback.OrderID).Msg("Failed to record callback")
				return model.CallbackResult{}, fmt.Errorf("record callback for order %s: %w", callback.OrderID, err)
			}
		} else if doc, err := s.payments.GetByOrderID(ctx, callback.OrderID); err == nil {
			result.PaymentID = doc.PaymentID
		}
	}

	metrics.RecordPaymentCallback(status)
	log.Info().
		Str("order_id", callback.OrderID).
		Str("status", status).
		Bool("test", callback.IsTest()).
		Msg("Payment callback processed")

	return result, nil
}

// ListPendingPayments returns stored payments still in the pending
// status. A pending record older than the gateway's retry horizon means
// a callback was missed. Without a repository the listing is empty.
func (s *PaymentServiceImpl) ListPendingPayments(ctx context.Context, limit int) ([]model.PaymentRecord, error) {
	if s.payments == nil {
		return nil, nil
	}

	docs, err := s.payments.ListByStatus(ctx, model.PaymentStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending payments: %w", err)
	}

	records := make([]model.PaymentRecord, len(docs))
	for i, doc := range docs {
		records[i] = model.PaymentRecord{
			OrderID:     doc.OrderID,
			PaymentID:   doc.PaymentID,
			Status:      doc.Status,
			AmountCents: doc.AmountCents,
			Currency:    doc.Currency,
			Test:        doc.Test,
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		}
	}
	return records, nil
}

// callbackRaw flattens the decoded callback payload for storage.
func callbackRaw(data string) map[string]string {
	values, err := paysera.Decode(data)
	if err != nil {
		return nil
	}
	raw := make(map[string]string, len(values))
	for k := range values {
		raw[k] = values.Get(k)
	}
	return raw
}
