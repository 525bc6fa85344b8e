package spatial

import (
	"math"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// MaxRoutePoints caps the waypoints persisted with a trip. Tracked routes
// are carried for display only, so a coarse shape is enough.
const MaxRoutePoints = 20

// RouteDistanceKm integrates the length of a tracked GPS route by summing
// haversine legs. Routes with fewer than two points have zero length.
func RouteDistanceKm(route []models.LatLng) float64 {
	if len(route) < 2 {
		return 0
	}
	var total float64
	for i := 1; i < len(route); i++ {
		total += DistanceKm(route[i-1], route[i])
	}
	return total
}

// DownsampleRoute reduces a route to at most maxPoints waypoints, keeping
// the start, the end and evenly spaced points in between. Routes already
// within the cap are returned unchanged.
func DownsampleRoute(route []models.LatLng, maxPoints int) []models.LatLng {
	if maxPoints < 2 || len(route) <= maxPoints {
		return route
	}
	result := make([]models.LatLng, 0, maxPoints)
	step := float64(len(route)-1) / float64(maxPoints-1)
	for i := 0; i < maxPoints; i++ {
		idx := int(math.Round(float64(i) * step))
		result = append(result, route[idx])
	}
	return result
}
