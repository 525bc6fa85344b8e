package handler

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taxifair/taxifair-backend-go/internal/geocoding"
	"github.com/taxifair/taxifair-backend-go/internal/models"
	"github.com/taxifair/taxifair-backend-go/internal/routing"
	"github.com/taxifair/taxifair-backend-go/internal/spatial"
	"github.com/taxifair/taxifair-backend-go/pkg/response"
)

// ProviderHandler fronts the upstream mapping providers: reverse geocoding
// for governorate resolution and routing for driving distance.
type ProviderHandler struct {
	geocoder *geocoding.Client
	router   *routing.Client
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(geocoder *geocoding.Client, router *routing.Client) *ProviderHandler {
	return &ProviderHandler{geocoder: geocoder, router: router}
}

// Governorate handles GET /api/v1/geo/governorate
func (h *ProviderHandler) Governorate(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		response.BadRequest(c, "Invalid coordinates")
		return
	}

	governorate, err := h.geocoder.GovernorateFromCoords(c.Request.Context(), lat, lng)
	if err != nil {
		log.Printf("Error fetching governorate: %v", err)
		response.InternalError(c, "Failed to resolve governorate")
		return
	}

	response.Success(c, gin.H{"governorate": governorate})
}

// RouteDistance handles GET /api/v1/route/distance. Without a routing API
// key it reports the straight-line distance instead.
func (h *ProviderHandler) RouteDistance(c *gin.Context) {
	start, end, ok := parseEndpoints(c)
	if !ok {
		response.BadRequest(c, "Invalid coordinates")
		return
	}

	if !h.router.Enabled() {
		response.Success(c, gin.H{
			"distance": spatial.DistanceKm(start, end),
			"source":   "haversine",
		})
		return
	}

	distance, err := h.router.RouteDistanceKm(c.Request.Context(), start, end)
	if err != nil {
		log.Printf("Error fetching route distance: %v", err)
		response.InternalError(c, "Failed to compute route distance")
		return
	}

	response.Success(c, gin.H{
		"distance": distance,
		"source":   "openrouteservice",
	})
}

func parseEndpoints(c *gin.Context) (models.LatLng, models.LatLng, bool) {
	fromLat, err1 := strconv.ParseFloat(c.Query("fromLat"), 64)
	fromLng, err2 := strconv.ParseFloat(c.Query("fromLng"), 64)
	toLat, err3 := strconv.ParseFloat(c.Query("toLat"), 64)
	toLng, err4 := strconv.ParseFloat(c.Query("toLng"), 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return models.LatLng{}, models.LatLng{}, false
	}
	return models.LatLng{Lat: fromLat, Lng: fromLng}, models.LatLng{Lat: toLat, Lng: toLng}, true
}
