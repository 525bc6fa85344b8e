package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// TripRepository handles database operations for trips
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `id, from_lat, from_lng, from_name, from_governorate,
	to_lat, to_lng, to_name, to_governorate,
	fare, distance, duration, passenger_count, start_time, governorate,
	route_json, user_id, ip_address, user_agent, created_at, submitted_at`

// Insert persists a new trip and returns its id.
func (r *TripRepository) Insert(ctx context.Context, trip *models.Trip) (string, error) {
	var routeJSON string
	if len(trip.Route) > 0 {
		data, err := json.Marshal(trip.Route)
		if err != nil {
			return "", fmt.Errorf("failed to encode route: %w", err)
		}
		routeJSON = string(data)
	}

	query := `INSERT INTO trips (` + tripColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		trip.ID,
		trip.From.Lat, trip.From.Lng, trip.From.Name, trip.From.Governorate,
		trip.To.Lat, trip.To.Lng, trip.To.Name, trip.To.Governorate,
		trip.Fare, trip.Distance, trip.Duration, trip.PassengerCount,
		trip.StartTime, trip.Governorate,
		routeJSON, trip.UserID, trip.IPAddress, trip.UserAgent,
		trip.CreatedAt, trip.SubmittedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert trip: %w", err)
	}

	return trip.ID, nil
}

// QuerySimilar runs the stage-1 similarity predicate: a distance band over
// trips with a confirmed fare, optionally pinned to a governorate, capped at
// filter.Limit. Stage-2 geographic refinement happens in memory, not here.
func (r *TripRepository) QuerySimilar(ctx context.Context, filter models.SimilarTripsFilter) ([]models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`

	conditions := []string{"distance >= ?", "distance <= ?", "fare > 0"}
	args := []interface{}{filter.MinDistance, filter.MaxDistance}

	if filter.Governorate != "" {
		conditions = append(conditions, "governorate = ?")
		args = append(args, filter.Governorate)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")

	limit := filter.Limit
	if limit <= 0 {
		limit = models.SimilarTripsLimit
	}
	query += " LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query similar trips: %w", err)
	}
	defer rows.Close()

	var trips []models.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

func scanTrip(rows *sql.Rows) (models.Trip, error) {
	var t models.Trip
	var routeJSON sql.NullString
	err := rows.Scan(
		&t.ID,
		&t.From.Lat, &t.From.Lng, &t.From.Name, &t.From.Governorate,
		&t.To.Lat, &t.To.Lng, &t.To.Name, &t.To.Governorate,
		&t.Fare, &t.Distance, &t.Duration, &t.PassengerCount,
		&t.StartTime, &t.Governorate,
		&routeJSON, &t.UserID, &t.IPAddress, &t.UserAgent,
		&t.CreatedAt, &t.SubmittedAt,
	)
	if err != nil {
		return t, fmt.Errorf("failed to scan trip: %w", err)
	}
	if routeJSON.Valid && routeJSON.String != "" {
		if err := json.Unmarshal([]byte(routeJSON.String), &t.Route); err != nil {
			return t, fmt.Errorf("failed to decode route: %w", err)
		}
	}
	return t, nil
}
