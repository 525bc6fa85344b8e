package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/taxifair/taxifair-backend-go/internal/models"
)

// DefaultBaseURL is the public OpenRouteService endpoint.
const DefaultBaseURL = "https://api.openrouteservice.org"

// Client fetches driving distances from OpenRouteService for trips that were
// not GPS-tracked. Requires an API key; callers fall back to straight-line
// distance when none is configured.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an OpenRouteService client.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client has an API key to call the provider.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type directionsResponse struct {
	Features []struct {
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"` // meters
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// RouteDistanceKm returns the driving distance in kilometers between two
// coordinates.
func (c *Client) RouteDistanceKm(ctx context.Context, start, end models.LatLng) (float64, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("start", formatCoord(start))
	params.Set("end", formatCoord(end))

	endpoint := c.baseURL + "/v2/directions/driving-car?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build directions request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("directions request returned status %d", resp.StatusCode)
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode directions response: %w", err)
	}
	if len(body.Features) == 0 {
		return 0, fmt.Errorf("directions response has no route")
	}

	return body.Features[0].Properties.Summary.Distance / 1000, nil
}

// ORS expects lng,lat order.
func formatCoord(p models.LatLng) string {
	return strconv.FormatFloat(p.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}
