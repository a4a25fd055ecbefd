package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://www.mediawiki.org/wiki/Wikidata_Query_Service/User_Manual
// The SPARQL endpoint takes the query urlencoded in the query string.
const baseURL = "https://query.wikidata.org/sparql"

const userAgent = "attractions-gpx/1.0"

// Q570116 is the Wikidata class "tourist attraction"; the geo-proximity
// query selects items that are (transitive subclasses of) it.
const attractionsQueryTemplate = `SELECT ?item ?itemLabel ?lat ?lon
(GROUP_CONCAT(DISTINCT ?instanceOfLabel; separator=", ") AS ?instanceOfLabels)
WHERE {
    {
        SELECT ?item ?lat ?lon ?instanceOfLabel
        WHERE {
            SERVICE wikibase:around {
              ?item wdt:P625 ?location.
              bd:serviceParam wikibase:center "Point(%[1]v,%[2]v)"^^geo:wktLiteral.
              bd:serviceParam wikibase:radius  "%[3]v" .
            }
            ?item wdt:P31/wdt:P279* wd:Q570116 .

            ?item p:P625/psv:P625 ?coordinate_node .
            ?coordinate_node wikibase:geoLatitude ?lat .
            ?coordinate_node wikibase:geoLongitude ?lon .

            OPTIONAL { ?item wdt:P31 ?instanceOf . }

            SERVICE wikibase:label { bd:serviceParam wikibase:language "%[4]s,en,[AUTO_LANGUAGE]". }
        }
    }
    SERVICE wikibase:label { bd:serviceParam wikibase:language "%[4]s,en,[AUTO_LANGUAGE]". }
}
GROUP BY ?item ?itemLabel ?lat ?lon`

// articlesQueryTemplate additionally collects the Wikipedia sitelinks of
// each item; items without any sitelink are excluded by the FILTER.
const articlesQueryTemplate = `SELECT ?item ?itemLabel ?lat ?lon
(GROUP_CONCAT(DISTINCT ?sitelink; separator=", ") AS ?sitelinks)
(GROUP_CONCAT(DISTINCT ?instanceOfLabel; separator=", ") AS ?instanceOfLabels)
WHERE {
    {
        SELECT ?item ?lat ?lon ?sitelink ?instanceOfLabel
        WHERE {
            SERVICE wikibase:around {
              ?item wdt:P625 ?location.
              bd:serviceParam wikibase:center "Point(%[1]v,%[2]v)"^^geo:wktLiteral.
              bd:serviceParam wikibase:radius  "%[3]v" .
            }
            ?item wdt:P625 ?coord .
            ?item p:P625/psv:P625 ?coordinate_node .
            ?coordinate_node wikibase:geoLatitude ?lat .
            ?coordinate_node wikibase:geoLongitude ?lon .

            ?sitelink schema:about ?item .
            ?sitelink schema:isPartOf ?wiki .
            FILTER(CONTAINS(STR(?wiki), "wikipedia.org"))
            OPTIONAL { ?item wdt:P31 ?instanceOf . }
            SERVICE wikibase:label { bd:serviceParam wikibase:language "%[4]s,en,[AUTO_LANGUAGE]". }
        }
    }
    SERVICE wikibase:label { bd:serviceParam wikibase:language "%[4]s,en,[AUTO_LANGUAGE]". }
}
GROUP BY ?item ?itemLabel ?lat ?lon`

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "wikidata-client"),
	}
}

// QueryAttractions runs the geo-proximity query for tourist attractions
// around a point. Labels resolve in the given language first, then English.
func (c *Client) QueryAttractions(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*SPARQLAPIResponse, error) {
	query := fmt.Sprintf(attractionsQueryTemplate, longitude, latitude, radiusKm, language)
	return c.runQuery(ctx, query)
}

// QueryArticles runs the variant that also returns Wikipedia sitelinks.
func (c *Client) QueryArticles(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*SPARQLAPIResponse, error) {
	query := fmt.Sprintf(articlesQueryTemplate, longitude, latitude, radiusKm, language)
	return c.runQuery(ctx, query)
}

func (c *Client) runQuery(ctx context.Context, query string) (*SPARQLAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("query", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("wikidata query service returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp SPARQLAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("fetched wikidata bindings", "binding_count", len(apiResp.Results.Bindings))

	return &apiResp, nil
}
