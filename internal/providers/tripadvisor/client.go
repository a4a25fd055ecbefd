package tripadvisor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://tripadvisor-content-api.readme.io/reference/overview
// Sample requests:
// - https://api.content.tripadvisor.com/api/v1/location/search?latLong=48.8566,2.3522&category=attractions&radius=2500&radiusUnit=m&key=...
// - https://api.content.tripadvisor.com/api/v1/location/123456/details?language=en&key=...
const baseURL = "https://api.content.tripadvisor.com/api/v1"

// The content API rejects requests without a referer header.
const refererHeader = "https://github.co"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "tripadvisor-client"),
	}
}

// SearchNearby returns the attraction location IDs around a point.
func (c *Client) SearchNearby(ctx context.Context, latitude, longitude float64, radiusMeters int, apiKey string) (*LocationSearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path += "/location/search"
	q := u.Query()
	q.Set("latLong", fmt.Sprintf("%v,%v", latitude, longitude))
	q.Set("category", "attractions")
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	q.Set("radiusUnit", "m")
	q.Set("language", "en")
	q.Set("key", apiKey)
	q.Set("searchQuery", "attractions")
	u.RawQuery = q.Encode()

	var apiResp LocationSearchAPIResponse
	if err := c.get(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched nearby locations",
		"latitude", latitude,
		"longitude", longitude,
		"result_count", len(apiResp.Data),
	)

	return &apiResp, nil
}

// GetDetails fetches the details record for one location ID.
func (c *Client) GetDetails(ctx context.Context, locationId, apiKey string) (*LocationDetailsAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path += fmt.Sprintf("/location/%s/details", locationId)
	q := u.Query()
	q.Set("language", "en")
	q.Set("key", apiKey)
	u.RawQuery = q.Encode()

	var apiResp LocationDetailsAPIResponse
	if err := c.get(ctx, u.String(), &apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("referer", refererHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("tripadvisor API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
