// Package i18n provides internationalization support for the checkout service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "lt-LT,lt;q=0.9,en;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "lt" from "lt-LT")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
// The storefront serves Lithuanian retail customers, so "lt" is fully translated.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.unauthorized":         "Unauthorized",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.forbidden":            "Forbidden",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.timeout":              "Request timeout",
			"error.invalid_signature":    "Invalid payment signature",
			"error.payment_failed":       "Payment could not be initiated",
			"error.carrier_unavailable":  "Carrier service is temporarily unavailable",
			"error.validation.items":     "items: at least one cart item is required",
			"error.validation.order":     "order_id and a positive amount are required",

			// Success messages
			"success.payment_created":  "Payment initiated successfully",
			"success.shipment_created": "Shipment registered successfully",
		},
		"lt": {
			// Error messages
			"error.invalid_request":      "Neteisinga užklausa",
			"error.invalid_request_body": "Neteisingas užklausos turinys",
			"error.internal_error":       "Įvyko nenumatyta klaida",
			"error.unauthorized":         "Neautorizuota",
			"error.api_key_required":     "Būtinas API raktas",
			"error.invalid_api_key":      "Neteisingas API raktas",
			"error.forbidden":            "Draudžiama",
			"error.not_found":            "Nerasta",
			"error.rate_limit_exceeded":  "Per daug užklausų, bandykite vėliau",
			"error.timeout":              "Užklausos laikas baigėsi",
			"error.invalid_signature":    "Neteisingas mokėjimo parašas",
			"error.payment_failed":       "Mokėjimo inicijuoti nepavyko",
			"error.carrier_unavailable":  "Siuntų tarnyba laikinai nepasiekiama",
			"error.validation.items":     "items: reikalinga bent viena krepšelio prekė",
			"error.validation.order":     "būtinas order_id ir teigiama suma",

			// Success messages
			"success.payment_created":  "Mokėjimas sėkmingai inicijuotas",
			"success.shipment_created": "Siunta sėkmingai užregistruota",
		},
	}
}
