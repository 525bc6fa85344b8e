package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taxifair/taxifair-backend-go/internal/middleware"
	"github.com/taxifair/taxifair-backend-go/internal/models"
	"github.com/taxifair/taxifair-backend-go/internal/ratelimit"
	"github.com/taxifair/taxifair-backend-go/internal/service"
	"github.com/taxifair/taxifair-backend-go/internal/validation"
	"github.com/taxifair/taxifair-backend-go/pkg/response"
)

// TripHandler handles HTTP requests for trip submission and analysis
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// SubmitTrip handles POST /api/v1/trips
func (h *TripHandler) SubmitTrip(c *gin.Context) {
	var trip models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		response.BadRequest(c, "Invalid trip payload")
		return
	}

	meta := service.SubmissionMeta{
		Identifier: c.GetString(middleware.IdentifierKey),
		UserID:     c.GetString(middleware.UserIDKey),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}
	if meta.Identifier == "" {
		meta.Identifier = c.ClientIP()
	}

	id, err := h.service.SubmitTrip(c.Request.Context(), &trip, meta)
	if err != nil {
		h.submitError(c, err)
		return
	}

	response.Success(c, gin.H{
		"trip_id": id,
		"message": "Trip submitted successfully",
	})
}

// AnalyzeSimilarTrips handles POST /api/v1/trips/analyze
func (h *TripHandler) AnalyzeSimilarTrips(c *gin.Context) {
	var query models.SimilarTripsQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		response.BadRequest(c, "Invalid analysis query")
		return
	}

	result, err := h.service.AnalyzeSimilarTrips(c.Request.Context(), &query)
	if err != nil {
		var invalid *service.InvalidQueryError
		if errors.As(err, &invalid) {
			response.BadRequest(c, invalid.Msg)
			return
		}
		log.Printf("Error analyzing similar trips: %v", err)
		response.InternalError(c, "Failed to analyze similar trips")
		return
	}

	response.Success(c, result)
}

// submitError maps the submission error taxonomy onto the envelope: quota
// and validation problems are user-facing, everything else is a generic 500.
func (h *TripHandler) submitError(c *gin.Context, err error) {
	var quota *ratelimit.QuotaError
	if errors.As(err, &quota) {
		response.TooManyRequests(c, quota.Reason)
		return
	}

	var invalid *validation.Error
	if errors.As(err, &invalid) {
		response.Error(c, http.StatusBadRequest, invalid.Error())
		return
	}

	log.Printf("Error submitting trip: %v", err)
	response.InternalError(c, "Failed to submit trip")
}
