package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://wiki.openstreetmap.org/wiki/Overpass_API
// The interpreter takes an Overpass QL query in the urlencoded `data`
// form field of a POST request.
const baseURL = "https://overpass-api.de/api/interpreter"

// attractionSelectors is the disjunction of tag filters considered "an
// attraction". Each entry becomes one `nwr[...](around:R,lat,lon);` term.
var attractionSelectors = []string{
	`node["tourism"="attraction"]`,
	`way["tourism"="attraction"]`,
	`relation["tourism"="attraction"]`,
	`nwr["leisure"="park"]`,
	`nwr["amenity"="feeding place"]`,
	`nwr["landuse"="village_green"]`,
	`nwr["man_made"="lighthouse"]`,
	`nwr[natural=anthill]`,
	`nwr[natural=sinkhole]`,
	`nwr[natural=arch]`,
	`nwr[natural=bay]`,
	`nwr[natural=cape]`,
	`nwr[natural=couloir]`,
	`nwr[natural=crater]`,
	`nwr[natural=dune]`,
	`nwr[natural=fumarole]`,
	`nwr[natural=geyser]`,
	`nwr[natural=glacier]`,
	`nwr[natural=hot_spring]`,
	`nwr[leisure=nature_reserve]`,
	`nwr[boundary=protected_area]`,
	`nwr[natural=reef]`,
	`nwr[natural=stone]`,
	`nwr[natural=termite_mound]`,
	`nwr[natural=valley]`,
	`nwr[natural=volcano]`,
	`nwr[waterway=waterfall]`,
	`nwr[tourism=attraction]`,
	`nwr[route=foot]`,
	`nwr[route=hiking]`,
	`nwr[tourism=aquarium]`,
	`nwr[attraction=animal]`,
	`nwr[historic=archaeological_site]`,
	`nwr[historic=battlefield]`,
	`nwr[historic=boundary_stone]`,
	`nwr[historic=castle]`,
	`nwr[historic=city_gate]`,
	`nwr[barrier=city_wall]`,
	`nwr["abandoned:amenity"="prison_camp"]`,
	`nwr[man_made=geoglyph]`,
	`nwr[tourism=hanami]`,
	`nwr["historic"]["historic"!="memorial"]["historic"!="wayside_shrine"]["historic"!="wayside_cross"]`,
	`nwr[attraction=maze]`,
	`nwr[geological=outcrop]`,
	`nwr[geological=palaeontological_site]`,
	`nwr[leisure=bird_hide]`,
	`nwr[highway=trailhead]`,
	`nwr[tourism=viewpoint]`,
	`nwr[tourism=zoo]`,
	`nwr["aerialway"]["aerialway"!="pylon"]`,
	`nwr[railway=funicular]`,
	`nwr[tourism=artwork]["artwork_type"!="statue"]["artwork_type"!="bust"]`,
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "overpass-client"),
	}
}

// QueryAttractions runs one radius query around a point and returns the
// raw elements with their center coordinates resolved by the server.
func (c *Client) QueryAttractions(ctx context.Context, latitude, longitude float64, radiusMeters int) (*QueryAPIResponse, error) {
	query := buildQuery(latitude, longitude, radiusMeters)
	form := url.Values{"data": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("overpass interpreter returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp QueryAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("fetched overpass elements",
		"latitude", latitude,
		"longitude", longitude,
		"element_count", len(apiResp.Elements),
	)

	return &apiResp, nil
}

func buildQuery(latitude, longitude float64, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%v,%v);", radiusMeters, latitude, longitude)

	var sb strings.Builder
	sb.WriteString("[out:json];\n(")
	for _, selector := range attractionSelectors {
		sb.WriteString(selector)
		sb.WriteString(around)
		sb.WriteString("\n")
	}
	sb.WriteString(");\nout center;")
	return sb.String()
}
