// Package metrics provides Prometheus metrics collection for the checkout service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RateQuotesTotal tracks shipping rate quotes by outcome.
	RateQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_rate_quotes_total",
			Help: "Total number of shipping rate quotes",
		},
		[]string{"status"},
	)

	// RateQuoteDuration tracks the duration of rate quote computations.
	RateQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipping_rate_quote_duration_seconds",
			Help:    "Shipping rate quote duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// PaymentCallbacksTotal tracks payment gateway callbacks by validation outcome.
	PaymentCallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Total number of payment gateway callbacks",
		},
		[]string{"status"},
	)

	// PaymentsInitiatedTotal tracks initiated payments by outcome.
	PaymentsInitiatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_initiated_total",
			Help: "Total number of initiated payments",
		},
		[]string{"status"},
	)

	// CarrierRequestsTotal tracks outbound carrier API requests by endpoint and outcome.
	CarrierRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_requests_total",
			Help: "Total number of outbound carrier API requests",
		},
		[]string{"endpoint", "status"},
	)

	// CarrierRequestDuration tracks outbound carrier API request duration.
	CarrierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_request_duration_seconds",
			Help:    "Outbound carrier API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRateQuote records metrics for a shipping rate quote.
func RecordRateQuote(duration time.Duration, status string) {
	RateQuoteDuration.Observe(duration.Seconds())
	RateQuotesTotal.WithLabelValues(status).Inc()
}

// RecordPaymentCallback records metrics for a payment gateway callback.
func RecordPaymentCallback(status string) {
	PaymentCallbacksTotal.WithLabelValues(status).Inc()
}

// RecordPaymentInitiated records metrics for a payment initiation.
func RecordPaymentInitiated(status string) {
	PaymentsInitiatedTotal.WithLabelValues(status).Inc()
}

// RecordCarrierRequest records metrics for an outbound carrier API request.
func RecordCarrierRequest(endpoint string, duration time.Duration, status string) {
	CarrierRequestsTotal.WithLabelValues(endpoint, status).Inc()
	CarrierRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
