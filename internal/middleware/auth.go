package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter fallback.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that validates API keys from the
// X-API-Key header or the api_key query parameter. With no configured
// keys, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		if key == "" {
			resp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyAPIKeyRequired, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}

		if !validKeys[key] {
			resp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidAPIKey, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
			return
		}

		c.Next()
	}
}
