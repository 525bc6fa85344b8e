package main

import (
	"log"

	"github.com/taxifair/taxifair-backend-go/internal/api"
	"github.com/taxifair/taxifair-backend-go/internal/config"
	"github.com/taxifair/taxifair-backend-go/internal/database"
	"github.com/taxifair/taxifair-backend-go/internal/geocoding"
	"github.com/taxifair/taxifair-backend-go/internal/handler"
	"github.com/taxifair/taxifair-backend-go/internal/ratelimit"
	"github.com/taxifair/taxifair-backend-go/internal/repository"
	"github.com/taxifair/taxifair-backend-go/internal/routing"
	"github.com/taxifair/taxifair-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	tripRepo := repository.NewTripRepository(db)
	limiter := ratelimit.NewSubmissionLimiter()
	tripService := service.NewTripService(tripRepo, limiter)

	geocoder := geocoding.NewClient(cfg.NominatimBaseURL, cfg.ProviderTimeout)
	router := routing.NewClient("", cfg.ORSAPIKey, cfg.ProviderTimeout)

	trips := handler.NewTripHandler(tripService)
	providers := handler.NewProviderHandler(geocoder, router)

	engine := api.SetupRouter(cfg, trips, providers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := engine.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
