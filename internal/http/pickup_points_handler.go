package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ScriptVenture/checkout-service/internal/domain/dto"
	"github.com/ScriptVenture/checkout-service/internal/service"
	"github.com/ScriptVenture/checkout-service/internal/venipak"
)

// PickupPointsHandler exposes the pickup point listing endpoint.
type PickupPointsHandler struct {
	pickupPoints service.PickupPointService
}

// NewPickupPointsHandler creates a PickupPointsHandler.
func NewPickupPointsHandler(pickupPoints service.PickupPointService) *PickupPointsHandler {
	return &PickupPointsHandler{pickupPoints: pickupPoints}
}

// ListPickupPoints handles GET /api/pickup-points requests.
//
// @Summary      List carrier pickup points
// @Description  Lists pickup points, lockers and post offices sourced live from the carrier, filtered by the query parameters. A carrier outage yields an empty list rather than an error so the storefront can still offer door delivery.
// @Tags         PickupPoints
// @Produce      json
// @Param        country query string false "ISO 3166-1 alpha-2 country filter" example(LT)
// @Param        city query string false "City filter, case-insensitive"
// @Param        postal_code query string false "Exact postal code filter"
// @Param        type query string false "Point type: pickup_point, locker or post_office"
// @Param        limit query int false "Maximum number of points to return"
// @Success      200 {object} dto.PickupPointsResponse "Matching pickup points"
// @Router       /api/pickup-points [get]
func (h *PickupPointsHandler) ListPickupPoints(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	filter := venipak.PickupPointFilter{
		Country:    c.Query("country"),
		City:       c.Query("city"),
		PostalCode: c.Query("postal_code"),
		Type:       c.Query("type"),
		Limit:      limit,
	}

	points := h.pickupPoints.ListPickupPoints(c.Request.Context(), filter)

	c.JSON(http.StatusOK, dto.PickupPointsResponse{
		Success:      true,
		PickupPoints: points,
		TotalCount:   len(points),
		Filters: dto.PickupPointFilters{
			Country:    filter.Country,
			City:       filter.City,
			PostalCode: filter.PostalCode,
			Type:       filter.Type,
			Limit:      filter.Limit,
		},
	})
}
