package models

import "time"

// Endpoint is one end of a trip: a coordinate plus the display name and
// governorate resolved by reverse geocoding.
type Endpoint struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name,omitempty"`
	Governorate string  `json:"governorate,omitempty"`
}

// LatLng is a bare coordinate, used for route waypoints.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip represents a submitted taxi trip (origin-destination pair with fare)
type Trip struct {
	ID string `json:"id" db:"id"`

	From Endpoint `json:"from" db:"from"`
	To   Endpoint `json:"to" db:"to"`

	// Fare in EGP. Trips pending a paid-fare confirmation have no fare yet
	// and never enter similarity analysis.
	Fare float64 `json:"fare" db:"fare"`

	// Distance in kilometers, from the routing provider or GPS track integration.
	Distance float64 `json:"distance" db:"distance"`

	// Duration in minutes, 0 when not reported.
	Duration int `json:"duration,omitempty" db:"duration"`

	// PassengerCount defaults to 1 at submission when not reported.
	PassengerCount int `json:"passenger_count,omitempty" db:"passenger_count"`

	// StartTime is an ISO-8601 timestamp; empty means unknown, and
	// time-based aggregation skips the trip.
	StartTime string `json:"start_time,omitempty" db:"start_time"`

	// Governorate is the administrative region of the trip, used as an
	// optional hard filter in similarity search.
	Governorate string `json:"governorate,omitempty" db:"governorate"`

	// Route is a downsampled GPS track, carried for display only.
	Route []LatLng `json:"route,omitempty" db:"route_json"`

	// Submission metadata
	UserID    string `json:"user_id,omitempty" db:"user_id"`
	IPAddress string `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent string `json:"user_agent,omitempty" db:"user_agent"`

	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}

// HasCoordinates reports whether both endpoints carry a coordinate.
func (t *Trip) HasCoordinates() bool {
	return t.From.Lat != 0 && t.From.Lng != 0 && t.To.Lat != 0 && t.To.Lng != 0
}

// StartedAt parses the trip's start time. The bool is false when the trip
// has no usable start time.
func (t *Trip) StartedAt() (time.Time, bool) {
	if t.StartTime == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, t.StartTime); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
