package validation

import (
	"strings"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// Plausibility thresholds for a submitted trip. These are a cheap filter
// against bad data and abuse, not a correctness proof.
const (
	MaxFareEGP         = 1000.0
	MaxDistanceKm      = 100.0
	MaxDurationMinutes = 300
	MaxPassengers      = 10

	MinSpeedKmh = 5.0
	MaxSpeedKmh = 120.0

	MinFarePerKm = 0.5
	MaxFarePerKm = 50.0

	// Egypt's bounding box
	MinLat = 22.0
	MaxLat = 32.0
	MinLng = 25.0
	MaxLng = 37.0
)

// Error carries the full set of feasibility violations for a submission,
// so the client can report every problem at once.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return "Validation failed: " + strings.Join(e.Violations, ", ")
}

// InEgypt reports whether a coordinate falls inside Egypt's bounding box.
func InEgypt(lat, lng float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= MinLng && lng <= MaxLng
}

// ValidateTrip checks a candidate submission against the plausibility rules
// and returns every violation found. All checks run; nothing short-circuits.
// An empty result means the trip is acceptable.
func ValidateTrip(trip *models.Trip) []string {
	var errors []string

	if trip.Fare <= 0 {
		errors = append(errors, "Fare must be greater than 0")
	}
	if trip.Fare > MaxFareEGP {
		errors = append(errors, "Fare seems too high (max 1000 EGP)")
	}

	if trip.Distance <= 0 {
		errors = append(errors, "Distance must be greater than 0")
	}
	if trip.Distance > MaxDistanceKm {
		errors = append(errors, "Distance seems too high (max 100 km)")
	}

	if trip.Duration != 0 {
		if trip.Duration < 0 {
			errors = append(errors, "Duration must be greater than 0")
		}
		if trip.Duration > MaxDurationMinutes {
			errors = append(errors, "Duration seems too long (max 5 hours)")
		}
	}

	if trip.PassengerCount != 0 {
		if trip.PassengerCount < 0 || trip.PassengerCount > MaxPassengers {
			errors = append(errors, "Invalid passenger count (1-10)")
		}
	}

	if trip.From.Lat != 0 && trip.From.Lng != 0 && !InEgypt(trip.From.Lat, trip.From.Lng) {
		errors = append(errors, "Start location seems outside Egypt")
	}
	if trip.To.Lat != 0 && trip.To.Lng != 0 && !InEgypt(trip.To.Lat, trip.To.Lng) {
		errors = append(errors, "End location seems outside Egypt")
	}

	if trip.Distance > 0 && trip.Duration > 0 {
		speedKmh := trip.Distance / (float64(trip.Duration) / 60)
		if speedKmh > MaxSpeedKmh {
			errors = append(errors, "Average speed seems unrealistic (>120 km/h)")
		}
		if speedKmh < MinSpeedKmh {
			errors = append(errors, "Average speed seems too slow (<5 km/h)")
		}
	}

	if trip.Fare > 0 && trip.Distance > 0 {
		farePerKm := trip.Fare / trip.Distance
		if farePerKm > MaxFarePerKm {
			errors = append(errors, "Fare per kilometer seems too high (>50 EGP/km)")
		}
		if farePerKm < MinFarePerKm {
			errors = append(errors, "Fare per kilometer seems too low (<0.5 EGP/km)")
		}
	}

	return errors
}
