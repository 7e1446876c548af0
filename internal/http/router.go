package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ScriptVenture/checkout-service/internal/metrics"
	"github.com/ScriptVenture/checkout-service/internal/middleware"
	"github.com/ScriptVenture/checkout-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LoggingService    service.LoggingService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableIdempotency: true,
	}
}

// Handlers groups the endpoint handlers mounted by the router.
type Handlers struct {
	Shipping     *ShippingHandler
	Payments     *PaymentsHandler
	PickupPoints *PickupPointsHandler
	Health       *HealthHandler
}

// NewRouter creates and configures the Gin router for the checkout service.
func NewRouter(handlers Handlers, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, handlers.Health, &cfg)

	api := router.Group("/api")
	if cfg.EnableIdempotency {
		api.Use(middleware.Idempotency(middleware.DefaultIdempotencyConfig()))
	}

	// Public storefront endpoints. The gateway callback stays public as
	// well: the gateway signs its payload instead of sending API keys.
	if handlers.Shipping != nil {
		api.POST("/rates", handlers.Shipping.QuoteRate)
	}
	if handlers.PickupPoints != nil {
		api.GET("/pickup-points", handlers.PickupPoints.ListPickupPoints)
	}
	if handlers.Payments != nil {
		api.POST("/payments", handlers.Payments.CreatePayment)
		api.GET("/payments/callback", handlers.Payments.PaymentCallback)
		api.POST("/payments/callback", handlers.Payments.PaymentCallback)
	}

	// Shipment registration and payment reconciliation are called by
	// the order backend, not the storefront, so they sit behind API key
	// auth when enabled.
	protected := api.Group("")
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		protected.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	if handlers.Shipping != nil {
		protected.POST("/shipments", handlers.Shipping.CreateShipment)
		protected.GET("/shipments/:number", handlers.Shipping.TrackShipment)
	}
	if handlers.Payments != nil {
		protected.GET("/payments/pending", handlers.Payments.ListPendingPayments)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
