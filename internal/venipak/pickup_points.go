package venipak

import (
	"context"
	"net/url"
	"strings"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
)

// Pickup point types returned by the carrier.
const (
	TypePickupPoint = "pickup_point"
	TypeLocker      = "locker"
	TypePostOffice  = "post_office"
)

// PickupPointFilter narrows a pickup point listing.
type PickupPointFilter struct {
	Country    string
	City       string
	PostalCode string
	// Type restricts results to one point type; empty means all.
	Type string
	// Limit caps the number of returned points; 0 means no cap.
	Limit int
}

// listingEndpoint pairs a carrier path with the point type it serves.
type listingEndpoint struct {
	path      string
	pointType string
}

// ListPickupPoints queries the carrier's listing endpoints sequentially
// and returns a best-effort union: an endpoint failure is logged and
// skipped rather than failing the whole lookup. Results are
// deduplicated by id (preferring the pickup_point entry on collision)
// and filtered by availability before the caller filters apply.
func (c *Client) ListPickupPoints(ctx context.Context, filter PickupPointFilter) ([]model.PickupPoint, error) {
	endpoints := []listingEndpoint{
		{path: pickupPath, pointType: TypePickupPoint},
		{path: lockerPath, pointType: TypeLocker},
		{path: postOfficePath, pointType: TypePostOffice},
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	if filter.Country != "" {
		q.Set("country", strings.ToUpper(filter.Country))
	}

	var points []model.PickupPoint
	for _, ep := range endpoints {
		if filter.Type != "" && filter.Type != ep.pointType {
			continue
		}

		var raw []pickupPointJSON
		if err := c.getJSON(ctx, ep.path, q, ep.pointType, &raw); err != nil {
			logSkippedEndpoint(ep.pointType, err)
			continue
		}
		for _, p := range raw {
			points = append(points, p.toModel(ep.pointType))
		}
	}

	points = DedupePoints(points)
	return FilterPoints(points, filter), nil
}

// DedupePoints removes duplicate ids from a listing union. When the
// same id appears with different types, the pickup_point entry wins.
// Input order is otherwise preserved.
func DedupePoints(points []model.PickupPoint) []model.PickupPoint {
	byID := make(map[string]int, len(points))
	result := make([]model.PickupPoint, 0, len(points))

	for _, p := range points {
		idx, seen := byID[p.ID]
		if !seen {
			byID[p.ID] = len(result)
			result = append(result, p)
			continue
		}
		if result[idx].Type != TypePickupPoint && p.Type == TypePickupPoint {
			result[idx] = p
		}
	}
	return result
}

// FilterPoints applies availability and the caller's filter to a listing.
func FilterPoints(points []model.PickupPoint, filter PickupPointFilter) []model.PickupPoint {
	result := make([]model.PickupPoint, 0, len(points))
	for _, p := range points {
		if !p.Available {
			continue
		}
		if filter.Country != "" && !strings.EqualFold(p.Country, filter.Country) {
			continue
		}
		if filter.City != "" && !strings.EqualFold(p.City, filter.City) {
			continue
		}
		if filter.PostalCode != "" && p.Zip != filter.PostalCode {
			continue
		}
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		result = append(result, p)
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
	}
	return result
}
