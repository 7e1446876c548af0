package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/i18n"
	"github.com/ScriptVenture/checkout-service/internal/logger"
	"github.com/ScriptVenture/checkout-service/internal/middleware"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// PaymentsHandler exposes payment initiation and the gateway callback.
type PaymentsHandler struct {
	payments service.PaymentService
	logging  service.LoggingService
}

// NewPaymentsHandler creates a PaymentsHandler.
func NewPaymentsHandler(payments service.PaymentService, logging service.LoggingService) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, logging: logging}
}

// CreatePayment handles POST /api/payments requests.
//
// @Summary      Initiate a gateway payment
// @Description  Builds a signed redirect URL for the payment gateway. Supports idempotency via the Idempotency-Key header so a double-submitted checkout yields one payment session.
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreatePaymentRequest true "Order to pay"
// @Success      200 {object} dto.SuccessResponse "Payment session with redirect URL"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/payments [post]
func (h *PaymentsHandler) CreatePayment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreatePaymentRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationOrder, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	order, err := h.payments.CreatePayment(c.Request.Context(), *req)
	if err != nil {
		middleware.AuditLogError(h.logging, c, "create_payment", "Payment initiation failed", err, map[string]interface{}{
			"order_id": req.OrderID,
		})
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyPaymentFailed, err)
		return
	}

	middleware.AuditLog(h.logging, c, "create_payment", "Payment initiated", map[string]interface{}{
		"order_id":     order.OrderID,
		"payment_id":   order.PaymentID,
		"amount_cents": req.AmountCents,
	})
	builder.SuccessOK(order)
}

// PaymentCallback handles GET and POST /api/payments/callback requests.
//
// The gateway retries until it receives the literal body "OK", so the
// success path answers plain text, not the JSON envelope.
//
// @Summary      Gateway payment callback
// @Description  Verifies the signed callback from the payment gateway and records the payment status. Answers the plain text "OK" expected by the gateway. Both GET and POST are accepted; parameters arrive in the query string or the form body.
// @Tags         Payments
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        data query string true "Base64url encoded callback payload"
// @Param        ss1 query string true "MD5 signature of data"
// @Success      200 {string} string "OK"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid or missing signature"
// @Failure      500 {object} dto.ErrorResponse "Internal server error - valid callback could not be recorded"
// @Router       /api/payments/callback [get]
func (h *PaymentsHandler) PaymentCallback(c *gin.Context) {
	builder := NewResponseBuilder(c)

	data := c.Query("data")
	if data == "" {
		data = c.PostForm("data")
	}
	ss1 := c.Query("ss1")
	if ss1 == "" {
		ss1 = c.PostForm("ss1")
	}

	result, err := h.payments.ProcessCallback(c.Request.Context(), data, ss1)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			middleware.AuditLogError(h.logging, c, "payment_callback", "Callback rejected", err, nil)
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidSignature, err)
			return
		}
		// Signature was valid but the status could not be recorded.
		// A non-OK body makes the gateway retry later; the error text
		// goes into the body since only the gateway sees it.
		middleware.AuditLogError(h.logging, c, "payment_callback", "Callback processing failed", err, nil)
		builder.ErrorWithMessage(http.StatusInternalServerError, err.Error(), err)
		return
	}

	lg := logger.Logger()
	lg.Info().
		Str("request_id", middleware.GetRequestID(c)).
		Str("order_id", result.OrderID).
		Str("status", result.Status).
		Bool("test", result.Test).
		Msg("Payment callback processed")

	middleware.AuditLog(h.logging, c, "payment_callback", "Payment callback processed", map[string]interface{}{
		"order_id": result.OrderID,
		"status":   result.Status,
		"paid":     result.Paid,
	})

	c.String(http.StatusOK, "OK")
}

// ListPendingPayments handles GET /api/payments/pending requests.
//
// @Summary      List payments awaiting a gateway callback
// @Description  Lists stored payments still in the pending status, newest first. A record that stays pending past the gateway's retry horizon indicates a missed callback and needs manual reconciliation.
// @Tags         Payments
// @Produce      json
// @Security     ApiKeyAuth
// @Param        limit query int false "Maximum number of records to return"
// @Success      200 {object} dto.SuccessResponse "Pending payment records"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/payments/pending [get]
func (h *PaymentsHandler) ListPendingPayments(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	payments, err := h.payments.ListPendingPayments(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if payments == nil {
		payments = []model.PaymentRecord{}
	}

	builder.SuccessOK(dto.PaymentListResponse{
		Payments:   payments,
		TotalCount: len(payments),
	})
}
