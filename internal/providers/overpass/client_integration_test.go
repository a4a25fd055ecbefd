//go:build integration

package overpass

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestClient_QueryAttractions_Integration(t *testing.T) {
	// Test coordinates: central Paris, small radius to keep the query light
	lat := 48.8566
	lon := 2.3522
	radius := 1000

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Logf("Making API call to Overpass API...")
	t.Logf("Coordinates: lat=%f, lon=%f, radius=%dm", lat, lon, radius)

	resp, err := client.QueryAttractions(context.Background(), lat, lon, radius)
	if err != nil {
		t.Fatalf("Failed to query attractions: %v", err)
	}

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Got %d elements", len(resp.Elements))
	if len(resp.Elements) == 0 {
		t.Error("Expected at least one element in central Paris")
	}

	for i, element := range resp.Elements {
		if i >= 5 {
			break
		}
		elemLat, elemLon := element.Position()
		t.Logf("  [%s/%d] %s at lat=%f, lon=%f", element.Type, element.Id, element.Tags["name"], elemLat, elemLon)
	}
}
