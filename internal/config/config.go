package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, sourced from the environment with
// optional .env support for local development.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Upstream providers
	ORSAPIKey        string
	NominatimBaseURL string
	ProviderTimeout  time.Duration
}

// Load reads configuration from the environment.
func Load() *Config {
	// Missing .env is fine; production configures via real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", ":8080"),
		DBPath:           getEnv("DB_PATH", "./data/trips.db"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		ORSAPIKey:        getEnv("ORS_API_KEY", ""),
		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", ""),
		ProviderTimeout:  10 * time.Second,
	}

	if t := os.Getenv("PROVIDER_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.ProviderTimeout = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
