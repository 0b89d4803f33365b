package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=39.22&lon=-111.86&zoom=15&accept-language=en&format=json
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"

	// Zoom 15 asks Nominatim for a street-level result.
	DefaultZoom = 15

	requestTimeout = 10 * time.Second
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	zoom       int
	language   string
	userAgent  string
}

// NewClient creates a Nominatim reverse-geocoding client. Empty arguments
// select the public endpoint, street-level zoom, and English results. The
// user agent is required by the Nominatim usage policy.
func NewClient(base string, zoom int, language, userAgent string) *Client {
	if base == "" {
		base = baseURL
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	if language == "" {
		language = "en"
	}
	if userAgent == "" {
		userAgent = "iss-tracker"
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    base,
		zoom:       zoom,
		language:   language,
		userAgent:  userAgent,
	}
}

// Reverse looks up the place under the given coordinates. A point Nominatim
// cannot geocode (open ocean, mostly) is not a transport error: the 200
// response carries its Error field and an empty DisplayName, and the caller
// decides what to do with it.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*ReverseAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("zoom", fmt.Sprintf("%d", c.zoom))
	q.Set("accept-language", c.language)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	// Parse the JSON response
	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
