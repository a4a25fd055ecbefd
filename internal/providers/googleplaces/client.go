package googleplaces

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://developers.google.com/maps/documentation/places/web-service/search-nearby
// Sample request: https://maps.googleapis.com/maps/api/place/nearbysearch/json?location=48.8566,2.3522&radius=600&type=tourist_attraction&key=...
const baseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "googleplaces-client"),
	}
}

// NearbySearch fetches one page of nearby places of the given type around
// a point. Places caps the page at ~20 results; callers oversample with a
// grid instead of paginating.
func (c *Client) NearbySearch(ctx context.Context, latitude, longitude float64, radiusMeters int, placeType, apiKey string) (*NearbySearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("location", fmt.Sprintf("%v,%v", latitude, longitude))
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	q.Set("type", placeType)
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("nearby search returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp NearbySearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("fetched nearby places",
		"latitude", latitude,
		"longitude", longitude,
		"result_count", len(apiResp.Results),
	)

	return &apiResp, nil
}
