package analysis

import (
	"math"

	"github.com/taxifair/taxifair-backend-go/internal/models"
	"github.com/taxifair/taxifair-backend-go/internal/spatial"
)

// BuildFilter derives the stage-1 store predicate from a query: keep trips
// whose distance falls within maxDistanceDiff of the queried distance and
// whose fare is confirmed, optionally pinned to the query's governorate.
// Time of day is deliberately not a filter here; it only segments the
// statistics afterwards.
func BuildFilter(query *models.SimilarTripsQuery) models.SimilarTripsFilter {
	return models.SimilarTripsFilter{
		MinDistance: math.Max(0, query.Distance-query.MaxDistanceDiff),
		MaxDistance: query.Distance + query.MaxDistanceDiff,
		Governorate: query.Governorate,
		Limit:       models.SimilarTripsLimit,
	}
}

// RefineByProximity is the stage-2 in-memory refinement: when the query
// supplies both endpoints, keep only trips whose origin and destination each
// lie within maxGeoDistance km of the query's. Without query coordinates the
// pool passes through unchanged.
func RefineByProximity(trips []models.Trip, query *models.SimilarTripsQuery) []models.Trip {
	if !query.HasCoordinates() {
		return trips
	}

	from := models.LatLng{Lat: query.FromLat, Lng: query.FromLng}
	to := models.LatLng{Lat: query.ToLat, Lng: query.ToLng}

	filtered := make([]models.Trip, 0, len(trips))
	for _, trip := range trips {
		fromDist := spatial.DistanceKm(from, models.LatLng{Lat: trip.From.Lat, Lng: trip.From.Lng})
		toDist := spatial.DistanceKm(to, models.LatLng{Lat: trip.To.Lat, Lng: trip.To.Lng})
		if fromDist <= query.MaxGeoDistance && toDist <= query.MaxGeoDistance {
			filtered = append(filtered, trip)
		}
	}
	return filtered
}
