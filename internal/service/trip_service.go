package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/taxifair/taxifair-backend-go/internal/analysis"
	"github.com/taxifair/taxifair-backend-go/internal/models"
	"github.com/taxifair/taxifair-backend-go/internal/spatial"
	"github.com/taxifair/taxifair-backend-go/internal/validation"
)

// storeTimeout bounds every trip-store call. A slow store surfaces as an
// aggregate failure rather than a hung request; there are no retries.
const storeTimeout = 5 * time.Second

// SubmissionMeta identifies who sent a submission. The identifier is an
// authenticated user id or a network-address fallback.
type SubmissionMeta struct {
	Identifier string
	UserID     string
	IPAddress  string
	UserAgent  string
}

// TripService runs the two public operations of the engine: trip submission
// and similar-trip analysis.
type TripService struct {
	store   TripStore
	limiter Admitter
	now     func() time.Time
}

// NewTripService creates a new trip service
func NewTripService(store TripStore, limiter Admitter) *TripService {
	return &TripService{
		store:   store,
		limiter: limiter,
		now:     time.Now,
	}
}

// SubmitTrip admits, validates and persists a trip. Admission runs first, so
// a submission that later fails validation still consumes quota.
func (s *TripService) SubmitTrip(ctx context.Context, trip *models.Trip, meta SubmissionMeta) (string, error) {
	if err := s.limiter.Admit(meta.Identifier); err != nil {
		return "", err
	}

	if violations := validation.ValidateTrip(trip); len(violations) > 0 {
		return "", &validation.Error{Violations: violations}
	}

	now := s.now()
	trip.ID = uuid.NewString()
	trip.CreatedAt = now
	trip.SubmittedAt = now
	trip.UserID = meta.UserID
	trip.IPAddress = meta.IPAddress
	trip.UserAgent = meta.UserAgent
	if trip.PassengerCount == 0 {
		trip.PassengerCount = 1
	}
	trip.Route = spatial.DownsampleRoute(trip.Route, spatial.MaxRoutePoints)

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.store.Insert(ctx, trip)
}

// AnalyzeSimilarTrips selects the working set of similar historical trips
// and reduces it to comparison statistics. The result is always well-defined;
// an empty working set yields an all-zero analysis.
func (s *TripService) AnalyzeSimilarTrips(ctx context.Context, query *models.SimilarTripsQuery) (models.AnalysisResult, error) {
	query.ApplyDefaults()

	if err := validateQuery(query); err != nil {
		return models.AnalysisResult{}, err
	}

	// Stage 1: store-level distance band + fare > 0 + optional governorate.
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	pool, err := s.store.QuerySimilar(ctx, analysis.BuildFilter(query))
	if err != nil {
		return models.AnalysisResult{}, err
	}

	// Stage 2: endpoint proximity, only when the query has coordinates.
	similar := analysis.RefineByProximity(pool, query)

	return analysis.Aggregate(similar), nil
}

func validateQuery(query *models.SimilarTripsQuery) error {
	if query.Distance <= 0 || query.Distance > validation.MaxDistanceKm {
		return &InvalidQueryError{Msg: "Invalid distance parameter"}
	}
	if query.FromLat != 0 && (query.FromLat < validation.MinLat || query.FromLat > validation.MaxLat) {
		return &InvalidQueryError{Msg: "Invalid start latitude"}
	}
	if query.ToLat != 0 && (query.ToLat < validation.MinLat || query.ToLat > validation.MaxLat) {
		return &InvalidQueryError{Msg: "Invalid end latitude"}
	}
	return nil
}
