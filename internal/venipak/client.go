package venipak

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/ScriptVenture/checkout-service/internal/metrics"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production carrier API root.
const DefaultBaseURL = "https://go.venipak.lt"

// Carrier API paths.
const (
	sendPath        = "/import/send.php"
	pickupPath      = "/ws/get_pickup_points"
	lockerPath      = "/ws/get_lockers"
	postOfficePath  = "/ws/get_post_offices"
	trackingPath    = "/ws/tracking"
	maxResponseSize = 4 << 20 // 4MB
)

// API is the carrier operations surface consumed by services and handlers.
type API interface {
	CreateShipment(ctx context.Context, shipment Shipment) (model.Shipment, error)
	TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error)
	ListPickupPoints(ctx context.Context, filter PickupPointFilter) ([]model.PickupPoint, error)
}

// Client talks to the Venipak carrier API.
type Client struct {
	baseURL    string
	apiKey     string
	username   string
	password   string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the carrier API root, used in tests and staging.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a carrier client with the given credentials.
func NewClient(apiKey, username, password string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateShipment registers a shipment via the XML import endpoint and
// returns the assigned tracking number.
func (c *Client) CreateShipment(ctx context.Context, shipment Shipment) (model.Shipment, error) {
	req := SendRequest{
		User: User{
			Name:   c.username,
			Pass:   c.password,
			APIKey: c.apiKey,
		},
		Shipments: []Shipment{shipment},
	}

	body, err := xml.MarshalIndent(req, "", "  ")
	if err != nil {
		return model.Shipment{}, fmt.Errorf("marshal send request: %w", err)
	}

	start := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return model.Shipment{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.RecordCarrierRequest("send", time.Since(start), "error")
		return model.Shipment{}, fmt.Errorf("send shipment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordCarrierRequest("send", time.Since(start), "error")
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return model.Shipment{}, fmt.Errorf("carrier API error %d: %s", resp.StatusCode, string(raw))
	}

	var sendResp SendResponse
	if err := xml.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&sendResp); err != nil {
		metrics.RecordCarrierRequest("send", time.Since(start), "error")
		return model.Shipment{}, fmt.Errorf("decode send response: %w", err)
	}

	if sendResp.Error != nil {
		metrics.RecordCarrierRequest("send", time.Since(start), "rejected")
		return model.Shipment{}, fmt.Errorf("carrier rejected shipment: %d %s", sendResp.Error.Code, sendResp.Error.Text)
	}
	if len(sendResp.Packs) == 0 {
		metrics.RecordCarrierRequest("send", time.Since(start), "rejected")
		return model.Shipment{}, fmt.Errorf("carrier returned no tracking number")
	}

	metrics.RecordCarrierRequest("send", time.Since(start), "success")
	return model.Shipment{
		TrackingNumber: sendResp.Packs[0].PackNo,
		Carrier:        "venipak",
	}, nil
}

// TrackShipment returns the scan events for a tracking number.
func (c *Client) TrackShipment(ctx context.Context, trackingNumber string) ([]model.TrackingEvent, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("tracking number is required")
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("number", trackingNumber)

	var raw []trackingEventJSON
	if err := c.getJSON(ctx, trackingPath, q, "tracking", &raw); err != nil {
		return nil, err
	}

	events := make([]model.TrackingEvent, 0, len(raw))
	for _, e := range raw {
		events = append(events, model.TrackingEvent{
			Timestamp: e.Date,
			Status:    e.Status,
			Location:  e.Terminal,
		})
	}
	return events, nil
}

// getJSON performs a GET against a carrier JSON endpoint.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, endpoint string, out interface{}) error {
	start := time.Now()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordCarrierRequest(endpoint, time.Since(start), "error")
		return fmt.Errorf("carrier request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordCarrierRequest(endpoint, time.Since(start), "error")
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return fmt.Errorf("carrier API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		metrics.RecordCarrierRequest(endpoint, time.Since(start), "error")
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	metrics.RecordCarrierRequest(endpoint, time.Since(start), "success")
	return nil
}

// toModel converts a carrier payload entry into the domain pickup point.
// Entries without an explicit availability flag are treated as available.
func (p pickupPointJSON) toModel(pointType string) model.PickupPoint {
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	return model.PickupPoint{
		ID:           strconv.Itoa(p.ID),
		Name:         p.Name,
		Code:         p.Code,
		Address:      p.Address,
		City:         p.City,
		Country:      p.Country,
		Zip:          p.Zip,
		Type:         pointType,
		Latitude:     p.Lat,
		Longitude:    p.Lng,
		WorkingHours: p.WorkingHours,
		MaxWeightKg:  p.MaxWeight,
		Available:    available,
	}
}

// logSkippedEndpoint records a swallowed per-endpoint failure during a
// best-effort listing union.
func logSkippedEndpoint(endpoint string, err error) {
	log.Warn().Err(err).Str("endpoint", endpoint).Msg("Carrier listing endpoint failed, skipping")
}
