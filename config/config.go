// Package config provides configuration management for the checkout service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Paysera  PayseraConfig
	Venipak  VenipakConfig
	Sender   SenderConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	// FrontendURL is the storefront base used for default payment
	// accept/cancel URLs.
	FrontendURL string
	// BackendURL is this service's public base used for default
	// callback URLs.
	BackendURL  string
	SwaggerUser string
	SwaggerPass string
}

// PayseraConfig holds payment gateway configuration.
type PayseraConfig struct {
	// ProjectID is the merchant project identifier at the gateway.
	ProjectID string
	// SignPassword signs outgoing requests and verifies callbacks.
	SignPassword string
	// GatewayURL is the hosted payment page endpoint.
	GatewayURL string
	// TestMode marks transactions as test at the gateway.
	TestMode bool
}

// VenipakConfig holds carrier API configuration.
type VenipakConfig struct {
	APIKey   string
	Username string
	Password string
	BaseURL  string
	// CircuitBreaker configuration for carrier calls.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerCooldown         time.Duration
}

// SenderConfig holds the consignor details stamped on every shipment.
type SenderConfig struct {
	Name       string
	Company    string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
	Email      string
}

// AuthConfig holds API authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration for database calls.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerCooldown         time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
			BackendURL:  getEnv("BACKEND_URL", "http://localhost:8080"),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Paysera: PayseraConfig{
			ProjectID:    getEnv("PAYSERA_PROJECT_ID", ""),
			SignPassword: getEnv("PAYSERA_SIGN_PASSWORD", ""),
			GatewayURL:   getEnv("PAYSERA_GATEWAY_URL", "https://www.paysera.com/pay/"),
			TestMode:     getEnvBool("PAYSERA_TEST_MODE", true),
		},
		Venipak: VenipakConfig{
			APIKey:                         getEnv("VENIPAK_API_KEY", ""),
			Username:                       getEnv("VENIPAK_USERNAME", ""),
			Password:                       getEnv("VENIPAK_PASSWORD", ""),
			BaseURL:                        getEnv("VENIPAK_BASE_URL", "https://go.venipak.lt"),
			CircuitBreakerFailureThreshold: getEnvInt("CARRIER_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CARRIER_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerCooldown:         getEnvDuration("CARRIER_CB_COOLDOWN", 30*time.Second),
		},
		Sender: SenderConfig{
			Name:       getEnv("COMPANY_NAME", ""),
			Company:    getEnv("COMPANY_LEGAL_NAME", ""),
			Address:    getEnv("COMPANY_ADDRESS", ""),
			City:       getEnv("COMPANY_CITY", ""),
			PostalCode: getEnv("COMPANY_POSTAL_CODE", ""),
			Country:    getEnv("COMPANY_COUNTRY", "LT"),
			Phone:      getEnv("COMPANY_PHONE", ""),
			Email:      getEnv("COMPANY_EMAIL", ""),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "checkout_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerCooldown:         getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
