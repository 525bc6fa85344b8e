package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taxifair/taxifair-backend-go/internal/config"
	"github.com/taxifair/taxifair-backend-go/internal/handler"
	"github.com/taxifair/taxifair-backend-go/internal/middleware"
)

// SetupRouter wires the HTTP surface: trip submission and analysis plus the
// provider passthrough endpoints.
func SetupRouter(cfg *config.Config, trips *handler.TripHandler, providers *handler.ProviderHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	// CORS for the mobile client
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "TaxiFair backend is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		tripRoutes := v1.Group("/trips")
		tripRoutes.Use(middleware.Identity(cfg.JWTSecret))
		{
			tripRoutes.POST("", trips.SubmitTrip)
			tripRoutes.POST("/analyze", trips.AnalyzeSimilarTrips)
		}

		v1.GET("/geo/governorate", providers.Governorate)
		v1.GET("/route/distance", providers.RouteDistance)
	}

	return r
}
