package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public OpenStreetMap Nominatim endpoint.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const userAgent = "TaxiFairApp/1.0"

// Client resolves coordinates to an Egyptian governorate via Nominatim
// reverse geocoding. One external call per lookup, bounded by the client
// timeout; failures surface as errors, never partial results.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Nominatim client. An empty baseURL uses the public
// endpoint.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	Address struct {
		State  string `json:"state"`
		County string `json:"county"`
		Region string `json:"region"`
	} `json:"address"`
}

// GovernorateFromCoords reverse-geocodes a coordinate and returns the
// governorate name, preferring state over county over region. An empty
// string means the provider knew nothing about the location.
func (c *Client) GovernorateFromCoords(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("zoom", "10")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build reverse geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "ar,en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding returned status %d", resp.StatusCode)
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode reverse geocoding response: %w", err)
	}

	switch {
	case body.Address.State != "":
		return body.Address.State, nil
	case body.Address.County != "":
		return body.Address.County, nil
	default:
		return body.Address.Region, nil
	}
}
