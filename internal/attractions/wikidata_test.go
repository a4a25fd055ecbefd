package attractions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"attractions-gpx/internal/providers/wikidata"
	"attractions-gpx/internal/types"
)

// Mock providers for testing

type mockSPARQLProvider struct {
	attractionsResponse *wikidata.SPARQLAPIResponse
	articlesResponse    *wikidata.SPARQLAPIResponse
	err                 error
}

func (m *mockSPARQLProvider) QueryAttractions(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*wikidata.SPARQLAPIResponse, error) {
	return m.attractionsResponse, m.err
}

func (m *mockSPARQLProvider) QueryArticles(ctx context.Context, latitude, longitude, radiusKm float64, language string) (*wikidata.SPARQLAPIResponse, error) {
	return m.articlesResponse, m.err
}

func binding(label, item, lat, lon, instanceOf string) wikidata.Binding {
	b := wikidata.Binding{
		Item: wikidata.Literal{Type: "uri", Value: item},
		Lat:  wikidata.Literal{Type: "literal", Value: lat},
		Lon:  wikidata.Literal{Type: "literal", Value: lon},
	}
	if label != "" {
		b.ItemLabel = &wikidata.Literal{Type: "literal", Value: label}
	}
	if instanceOf != "" {
		b.InstanceOfLabels = &wikidata.Literal{Type: "literal", Value: instanceOf}
	}
	return b
}

func sparqlResponse(bindings ...wikidata.Binding) *wikidata.SPARQLAPIResponse {
	resp := &wikidata.SPARQLAPIResponse{}
	resp.Results.Bindings = bindings
	return resp
}

func TestWikidataSource_GetData(t *testing.T) {
	provider := &mockSPARQLProvider{
		attractionsResponse: sparqlResponse(
			binding("Eiffel Tower", "http://www.wikidata.org/entity/Q243", "48.8584", "2.2945", "lattice tower, tourist attraction"),
			binding("", "http://www.wikidata.org/entity/Q999", "48.86", "2.34", ""),
			binding("Broken", "http://www.wikidata.org/entity/Q000", "not-a-number", "2.34", ""),
		),
	}
	source := NewWikidataSourceWithProvider(provider, "en", testLogger())

	points, err := source.GetData(context.Background(), types.NewCoords(48.8566, 2.3522), 5000)
	if err != nil {
		t.Fatalf("GetData() unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points (unresolvable coordinates dropped), got %d", len(points))
	}

	first := points[0]
	if first.Name != "Eiffel Tower" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Coordinates != types.NewCoords(48.8584, 2.2945) {
		t.Errorf("Coordinates = %v", first.Coordinates)
	}
	if !strings.HasPrefix(first.Description, "Instance of: lattice tower, tourist attraction") {
		t.Errorf("Description = %q", first.Description)
	}
	if !strings.Contains(first.Description, "Wikidata Item: http://www.wikidata.org/entity/Q243") {
		t.Errorf("Description missing item URL: %q", first.Description)
	}

	// Missing label falls back to the placeholder; description has no
	// instance-of prefix.
	second := points[1]
	if second.Name != "Unknown" {
		t.Errorf("Name = %q", second.Name)
	}
	if second.Description != "Wikidata Item: http://www.wikidata.org/entity/Q999" {
		t.Errorf("Description = %q", second.Description)
	}
}

func TestWikidataSource_ProviderError(t *testing.T) {
	wantErr := errors.New("sparql timeout")
	source := NewWikidataSourceWithProvider(&mockSPARQLProvider{err: wantErr}, "en", testLogger())

	_, err := source.GetData(context.Background(), types.NewCoords(48.8566, 2.3522), 5000)
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetData() error = %v, want %v", err, wantErr)
	}
}

func TestWikipediaSource_GetData(t *testing.T) {
	withLinks := binding("Eiffel Tower", "http://www.wikidata.org/entity/Q243", "48.8584", "2.2945", "lattice tower")
	withLinks.Sitelinks = &wikidata.Literal{
		Type:  "uri",
		Value: "https://de.wikipedia.org/wiki/Eiffelturm, https://fr.wikipedia.org/wiki/Tour_Eiffel, https://en.wikipedia.org/wiki/Eiffel_Tower",
	}

	provider := &mockSPARQLProvider{
		articlesResponse: sparqlResponse(withLinks),
	}
	source := NewWikipediaSourceWithProvider(provider, "fr", testLogger())

	points, err := source.GetData(context.Background(), types.NewCoords(48.8566, 2.3522), 5000)
	if err != nil {
		t.Fatalf("GetData() unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}

	description := points[0].Description
	if !strings.HasPrefix(description, "Instance of:\nlattice tower; ") {
		t.Errorf("Description = %q", description)
	}

	// The preferred language article sorts first, then English.
	frIdx := strings.Index(description, "fr.wikipedia.org")
	enIdx := strings.Index(description, "en.wikipedia.org")
	deIdx := strings.Index(description, "de.wikipedia.org")
	if frIdx == -1 || enIdx == -1 || deIdx == -1 {
		t.Fatalf("Description missing article links: %q", description)
	}
	if !(frIdx < enIdx && enIdx < deIdx) {
		t.Errorf("article links not sorted by language priority: %q", description)
	}
}

func TestFormatArticleLinks(t *testing.T) {
	got := formatArticleLinks("https://ru.wikipedia.org/wiki/A, https://en.wikipedia.org/wiki/A", "en")
	want := "https://en.wikipedia.org/wiki/A\n\nhttps://ru.wikipedia.org/wiki/A"
	if got != want {
		t.Errorf("formatArticleLinks() = %q, want %q", got, want)
	}
}
