package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/mocks"
)

func auditTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments", nil)
	c.Set(string(RequestIDKey), "req-audit-1")
	return c, w
}

func captureAuditEntry(t *testing.T, logged chan *model.LogEntry) *model.LogEntry {
	t.Helper()
	select {
	case entry := <-logged:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was not persisted")
		return nil
	}
}

func TestAuditLog(t *testing.T) {
	StopAsyncLogger()

	mockService := new(mocks.MockLoggingService)
	logged := make(chan *model.LogEntry, 1)
	mockService.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case logged <- args.Get(1).(*model.LogEntry):
			default:
			}
		}).
		Return(nil)

	c, _ := auditTestContext()
	AuditLog(mockService, c, "create_payment", "Payment initiated", map[string]interface{}{
		"order_id": "ORD-123",
	})

	entry := captureAuditEntry(t, logged)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "create_payment", entry.ActionType)
	assert.Equal(t, "Payment initiated", entry.Message)
	assert.Equal(t, "req-audit-1", entry.RequestID)
	assert.Equal(t, "ORD-123", entry.Fields["order_id"])
}

func TestAuditLogError(t *testing.T) {
	StopAsyncLogger()

	mockService := new(mocks.MockLoggingService)
	logged := make(chan *model.LogEntry, 1)
	mockService.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			select {
			case logged <- args.Get(1).(*model.LogEntry):
			default:
			}
		}).
		Return(nil)

	c, _ := auditTestContext()
	AuditLogError(mockService, c, "payment_callback", "Callback rejected", errors.New("invalid signature"), nil)

	entry := captureAuditEntry(t, logged)
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, "payment_callback", entry.ActionType)
	assert.Equal(t, "invalid signature", entry.Error)
}

func TestAuditLogNilServiceDoesNotPanic(t *testing.T) {
	c, _ := auditTestContext()

	assert.NotPanics(t, func() {
		AuditLog(nil, c, "create_payment", "Payment initiated", nil)
		AuditLogError(nil, c, "create_payment", "Payment failed", errors.New("boom"), nil)
	})
}
