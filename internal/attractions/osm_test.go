package attractions

import (
	"context"
	"errors"
	"testing"

	"attractions-gpx/internal/providers/overpass"
	"attractions-gpx/internal/types"
)

// Mock providers for testing

type mockOverpassProvider struct {
	response *overpass.QueryAPIResponse
	err      error
}

func (m *mockOverpassProvider) QueryAttractions(ctx context.Context, latitude, longitude float64, radiusMeters int) (*overpass.QueryAPIResponse, error) {
	return m.response, m.err
}

func TestOsmSource_GetData(t *testing.T) {
	center := &struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	}{Lat: 48.8606, Lon: 2.3376}

	provider := &mockOverpassProvider{
		response: &overpass.QueryAPIResponse{
			Elements: []overpass.Element{
				{
					Type: "node",
					Lat:  48.8584,
					Lon:  2.2945,
					Tags: map[string]string{
						"name":    "Tour Eiffel",
						"name:en": "Eiffel Tower",
						"tourism": "attraction",
					},
				},
				{
					// Way with a computed center instead of lat/lon.
					Type:   "way",
					Center: center,
					Tags: map[string]string{
						"name":     "Louvre",
						"historic": "castle",
						"leisure":  "park",
					},
				},
				{
					// No resolvable coordinates, dropped.
					Type: "relation",
					Tags: map[string]string{"name": "Ghost"},
				},
			},
		},
	}
	source := NewOsmSourceWithProvider(provider, "en", testLogger())

	points, err := source.GetData(context.Background(), types.NewCoords(48.8566, 2.3522), 5000)
	if err != nil {
		t.Fatalf("GetData() unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}

	if points[0].Name != "Eiffel Tower" {
		t.Errorf("expected localized English name, got %q", points[0].Name)
	}
	if points[0].Description != "Tourism: attraction" {
		t.Errorf("Description = %q", points[0].Description)
	}

	if points[1].Coordinates != types.NewCoords(48.8606, 2.3376) {
		t.Errorf("way center coordinates = %v", points[1].Coordinates)
	}
	if points[1].Description != "Leisure: park; Historic: castle" {
		t.Errorf("Description = %q", points[1].Description)
	}
}

func TestOsmSource_NamePriority(t *testing.T) {
	tests := []struct {
		name     string
		language string
		tags     map[string]string
		want     string
	}{
		{
			name:     "localized name preferred",
			language: "fr",
			tags:     map[string]string{"name:fr": "Tour Eiffel", "name:en": "Eiffel Tower", "name": "Eiffel"},
			want:     "Tour Eiffel",
		},
		{
			name:     "english fallback",
			language: "fr",
			tags:     map[string]string{"name:en": "Eiffel Tower", "name": "Eiffel"},
			want:     "Eiffel Tower",
		},
		{
			name:     "default name fallback",
			language: "fr",
			tags:     map[string]string{"name": "Eiffel"},
			want:     "Eiffel",
		},
		{
			name:     "placeholder when unnamed",
			language: "fr",
			tags:     map[string]string{"tourism": "viewpoint"},
			want:     "Unknown Place",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nameFromTags(tt.tags, tt.language)
			if got != tt.want {
				t.Errorf("nameFromTags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOsmSource_ProviderError(t *testing.T) {
	wantErr := errors.New("interpreter busy")
	source := NewOsmSourceWithProvider(&mockOverpassProvider{err: wantErr}, "en", testLogger())

	_, err := source.GetData(context.Background(), types.NewCoords(48.8566, 2.3522), 5000)
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetData() error = %v, want %v", err, wantErr)
	}
}
