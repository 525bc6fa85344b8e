package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// Earth's mean radius
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// DistanceKm calculates the great-circle (haversine) distance in kilometers
// between two coordinates in WGS84 degrees. Symmetric, 0 for identical
// points. NaN coordinates propagate NaN; this feeds soft filtering, never
// hard validation.
func DistanceKm(a, b models.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}
