package nominatim

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Reverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("format"); got != "json" {
			t.Errorf("format = %q", got)
		}
		if got := q.Get("lat"); got != "48.8566" {
			t.Errorf("lat = %q", got)
		}
		if got := q.Get("lon"); got != "2.3522" {
			t.Errorf("lon = %q", got)
		}
		if got := q.Get("accept-language"); got != "fr" {
			t.Errorf("accept-language = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got == "" {
			t.Error("missing User-Agent header")
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"display_name": "Paris, Ile-de-France, France",
			"address": {
				"city": "Paris",
				"state": "Ile-de-France",
				"country": "France",
				"country_code": "fr"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.baseURL = server.URL

	resp, err := client.Reverse(context.Background(), 48.8566, 2.3522, "fr")
	if err != nil {
		t.Fatalf("Reverse() unexpected error: %v", err)
	}

	if resp.Address.City != "Paris" {
		t.Errorf("City = %q", resp.Address.City)
	}
	if resp.Address.CountryCode != "fr" {
		t.Errorf("CountryCode = %q", resp.Address.CountryCode)
	}
	if resp.DisplayName != "Paris, Ile-de-France, France" {
		t.Errorf("DisplayName = %q", resp.DisplayName)
	}
}

func TestClient_Reverse_NoLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("accept-language") {
			t.Error("accept-language should be omitted when language is empty")
		}
		_, _ = w.Write([]byte(`{"display_name": "x"}`))
	}))
	defer server.Close()

	client := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
	client.baseURL = server.URL

	if _, err := client.Reverse(context.Background(), 48.8566, 2.3522, ""); err != nil {
		t.Fatalf("Reverse() unexpected error: %v", err)
	}
}
