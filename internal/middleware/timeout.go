package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/i18n"
)

// TimeoutConfig configures the request timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration allowed for handling a request.
	Timeout time.Duration
	// FallbackMessage is used when no translator is available.
	FallbackMessage string
}

// DefaultTimeoutConfig returns the default timeout configuration.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:         30 * time.Second,
		FallbackMessage: "Request timeout",
	}
}

// Timeout returns a middleware that aborts requests exceeding the configured
// duration with 504. The handler chain keeps running in its goroutine, but the
// response is written here once so a late handler cannot clobber it.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		var handlerDone bool

		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			handlerDone = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
			mu.Lock()
			defer mu.Unlock()
			if handlerDone {
				return
			}
			if !c.Writer.Written() {
				message := cfg.FallbackMessage
				if translator := i18n.GetTranslator(); translator != nil {
					message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
				}

				resp := dto.NewError(dto.ErrCodeTimeout, message).
					WithRequestID(GetRequestID(c))
				c.AbortWithStatusJSON(http.StatusGatewayTimeout, resp)
			}
		}
	}
}

// TimeoutWithDuration creates timeout middleware for a specific duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
