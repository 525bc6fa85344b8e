package models

// Default similarity query parameters.
const (
	DefaultMaxDistanceDiffKm = 2.0
	DefaultMaxTimeDiffHours  = 2.0
	DefaultMaxGeoDistanceKm  = 5.0

	// SimilarTripsLimit caps the stage-1 store query before geographic
	// refinement. A representative sample is enough for the aggregator.
	SimilarTripsLimit = 100
)

// SimilarTripsQuery describes the in-flight trip a user wants compared
// against the historical pool. It is never persisted.
type SimilarTripsQuery struct {
	FromLat float64 `json:"fromLat" form:"fromLat"`
	FromLng float64 `json:"fromLng" form:"fromLng"`
	ToLat   float64 `json:"toLat" form:"toLat"`
	ToLng   float64 `json:"toLng" form:"toLng"`

	Distance    float64 `json:"distance" form:"distance"`       // km, required
	StartTime   string  `json:"startTime" form:"startTime"`     // ISO-8601, optional
	Governorate string  `json:"governorate" form:"governorate"` // optional hard filter

	// Similarity tuning, zero values replaced by the defaults above.
	MaxDistanceDiff float64 `json:"maxDistanceDiff" form:"maxDistanceDiff"` // km
	MaxTimeDiff     float64 `json:"maxTimeDiff" form:"maxTimeDiff"`         // hours
	MaxGeoDistance  float64 `json:"maxDistance" form:"maxDistance"`         // km endpoint proximity
}

// ApplyDefaults fills unset similarity parameters.
func (q *SimilarTripsQuery) ApplyDefaults() {
	if q.MaxDistanceDiff <= 0 {
		q.MaxDistanceDiff = DefaultMaxDistanceDiffKm
	}
	if q.MaxTimeDiff <= 0 {
		q.MaxTimeDiff = DefaultMaxTimeDiffHours
	}
	if q.MaxGeoDistance <= 0 {
		q.MaxGeoDistance = DefaultMaxGeoDistanceKm
	}
}

// HasCoordinates reports whether the query supplies both endpoints, which
// enables the geographic refinement stage.
func (q *SimilarTripsQuery) HasCoordinates() bool {
	return q.FromLat != 0 && q.FromLng != 0 && q.ToLat != 0 && q.ToLng != 0
}

// SimilarTripsFilter is the stage-1 store predicate derived from a query:
// a distance band plus an optional governorate equality, capped at Limit.
// Keeping it a plain value keeps the repository swappable.
type SimilarTripsFilter struct {
	MinDistance float64 // km, inclusive
	MaxDistance float64 // km, inclusive
	Governorate string  // exact match when non-empty
	Limit       int
}
