package wikidata

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_QueryAttractions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("format"); got != "json" {
			t.Errorf("format = %q", got)
		}
		query := q.Get("query")
		// The around service takes Point(longitude latitude order).
		if !strings.Contains(query, `"Point(2.3522,48.8566)"^^geo:wktLiteral`) {
			t.Errorf("query missing center point: %q", query)
		}
		if !strings.Contains(query, `wikibase:radius  "5"`) {
			t.Errorf("query missing radius: %q", query)
		}
		if !strings.Contains(query, "wd:Q570116") {
			t.Errorf("query missing attraction class constraint: %q", query)
		}
		if !strings.Contains(query, `wikibase:language "fr,en,[AUTO_LANGUAGE]"`) {
			t.Errorf("query missing language preference: %q", query)
		}
		if got := r.Header.Get("User-Agent"); got != userAgent {
			t.Errorf("User-Agent = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": {
				"bindings": [
					{
						"item": {"value": "http://www.wikidata.org/entity/Q243"},
						"itemLabel": {"value": "Tour Eiffel"},
						"lat": {"value": "48.858296"},
						"lon": {"value": "2.294479"},
						"instanceOfLabels": {"value": "observation tower"}
					}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.baseURL = server.URL

	resp, err := client.QueryAttractions(context.Background(), 48.8566, 2.3522, 5, "fr")
	if err != nil {
		t.Fatalf("QueryAttractions() unexpected error: %v", err)
	}

	if len(resp.Results.Bindings) != 1 {
		t.Fatalf("expected 1 binding, got %d", len(resp.Results.Bindings))
	}
	binding := resp.Results.Bindings[0]
	if binding.ItemLabel.Value != "Tour Eiffel" {
		t.Errorf("ItemLabel = %q", binding.ItemLabel.Value)
	}
	if binding.Lat.Value != "48.858296" || binding.Lon.Value != "2.294479" {
		t.Errorf("coordinates = %q,%q", binding.Lat.Value, binding.Lon.Value)
	}
}

func TestClient_QueryArticles_RequestsSitelinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		if !strings.Contains(query, "?sitelink schema:about ?item") {
			t.Errorf("query missing sitelink clause: %q", query)
		}
		if !strings.Contains(query, `CONTAINS(STR(?wiki), "wikipedia.org")`) {
			t.Errorf("query missing wikipedia filter: %q", query)
		}
		_, _ = w.Write([]byte(`{"results": {"bindings": []}}`))
	}))
	defer server.Close()

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.baseURL = server.URL

	if _, err := client.QueryArticles(context.Background(), 48.8566, 2.3522, 5, "en"); err != nil {
		t.Fatalf("QueryArticles() unexpected error: %v", err)
	}
}
