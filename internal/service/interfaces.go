package service

import (
	"context"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// TripStore is the persistence boundary for trips. The production
// implementation is repository.TripRepository over sqlite.
type TripStore interface {
	Insert(ctx context.Context, trip *models.Trip) (string, error)
	QuerySimilar(ctx context.Context, filter models.SimilarTripsFilter) ([]models.Trip, error)
}

// Admitter decides whether an identifier may submit another trip.
type Admitter interface {
	Admit(identifier string) error
}
