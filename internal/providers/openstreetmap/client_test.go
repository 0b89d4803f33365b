package openstreetmap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_Reverse(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"lat":             r.URL.Query().Get("lat"),
			"lon":             r.URL.Query().Get("lon"),
			"zoom":            r.URL.Query().Get("zoom"),
			"accept-language": r.URL.Query().Get("accept-language"),
			"format":          r.URL.Query().Get("format"),
			"user-agent":      r.Header.Get("User-Agent"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"place_id": 12345,
			"display_name": "Sanpete County, Utah, United States",
			"address": {
				"county": "Sanpete County",
				"state": "Utah",
				"country": "United States",
				"country_code": "us"
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, "", "iss-tracker-test")

	resp, err := client.Reverse(context.Background(), 39.227672510032775, -111.86483176776528)
	if err != nil {
		t.Fatalf("Reverse() unexpected error: %v", err)
	}

	if !strings.Contains(resp.DisplayName, "Sanpete County, Utah, United States") {
		t.Errorf("DisplayName = %q, want it to contain Sanpete County, Utah, United States", resp.DisplayName)
	}
	if resp.Address.State != "Utah" {
		t.Errorf("Address.State = %q, want Utah", resp.Address.State)
	}

	if gotQuery["zoom"] != "15" {
		t.Errorf("zoom = %q, want 15 (street level)", gotQuery["zoom"])
	}
	if gotQuery["accept-language"] != "en" {
		t.Errorf("accept-language = %q, want en", gotQuery["accept-language"])
	}
	if gotQuery["format"] != "json" {
		t.Errorf("format = %q, want json", gotQuery["format"])
	}
	if gotQuery["user-agent"] != "iss-tracker-test" {
		t.Errorf("User-Agent = %q, want iss-tracker-test", gotQuery["user-agent"])
	}
	if gotQuery["lat"] == "" || gotQuery["lon"] == "" {
		t.Error("lat/lon query parameters not set")
	}
}

func TestClient_Reverse_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Nominatim answers 200 with an error body for open-ocean points.
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 15, "en", "iss-tracker-test")

	resp, err := client.Reverse(context.Background(), -42.0, -151.0)
	if err != nil {
		t.Fatalf("Reverse() unexpected error: %v", err)
	}
	if resp.Error == "" {
		t.Error("Error field empty, want Nominatim no-match error")
	}
	if resp.DisplayName != "" {
		t.Errorf("DisplayName = %q, want empty", resp.DisplayName)
	}
}

func TestClient_Reverse_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bandwidth limit exceeded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 15, "en", "iss-tracker-test")

	if _, err := client.Reverse(context.Background(), 39.22, -111.86); err == nil {
		t.Fatal("Reverse() expected error on 503 response")
	}
}
