package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// AuditLog records a domain action for audit purposes, such as a payment
// initiation, a signed callback or a shipment registration. Persistence is
// best effort and never blocks the request.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	persistAuditEntry(loggingService, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed domain action with its error.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persistAuditEntry(loggingService, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
}

func persistAuditEntry(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
