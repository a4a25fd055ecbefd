//go:build integration

package nominatim

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

func TestClient_Reverse_Integration(t *testing.T) {
	// Test coordinates: central Paris
	lat := 48.8566
	lon := 2.3522

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Logf("Making API call to Nominatim reverse geocoding API...")
	t.Logf("Coordinates: lat=%f, lon=%f", lat, lon)

	resp, err := client.Reverse(context.Background(), lat, lon, "en")
	if err != nil {
		t.Fatalf("Failed to reverse geocode: %v", err)
	}

	// Pretty print the raw response
	rawJSON, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}

	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if resp == nil {
		t.Fatal("Response is nil")
	}

	t.Logf("Address Details:")
	if resp.Address.City != "" {
		t.Logf("  City: %s", resp.Address.City)
	}
	if resp.Address.State != "" {
		t.Logf("  State: %s", resp.Address.State)
	}
	if resp.Address.Country != "" {
		t.Logf("  Country: %s", resp.Address.Country)
	}

	if resp.DisplayName == "" {
		t.Error("DisplayName is empty")
	}
	if resp.Address.Country == "" {
		t.Error("Country is empty")
	}
}
