package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
)

func TestHTTPGeocoderResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "1 rue de la Gare 60155" {
			t.Errorf("q = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// GeoJSON: coordinates are [lng, lat]
		w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [2.4207, 49.2150]},
				"properties": {"label": "1 Rue de la Gare 60155 Saint-Leu-d'Esserent"}
			}]
		}`))
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(srv.URL)

	loc, err := g.Resolve(context.Background(), "1 rue de la Gare 60155")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if loc.Lat != 49.2150 || loc.Lng != 2.4207 {
		t.Errorf("coordinates swapped or wrong: lat=%v lng=%v", loc.Lat, loc.Lng)
	}
	if loc.Label == "" {
		t.Error("label lost")
	}
}

func TestHTTPGeocoderNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(srv.URL)

	_, err := g.Resolve(context.Background(), "adresse inconnue")
	if !httperr.IsBusiness(err, httperr.CodeAddressUnresolved) {
		t.Fatalf("expected address_unresolved, got %v", err)
	}
}

func TestHTTPGeocoderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewHTTPGeocoder(srv.URL)

	_, err := g.Resolve(context.Background(), "1 rue de la Gare")
	if err == nil {
		t.Fatal("provider failure must surface as an error")
	}
	if httperr.IsBusiness(err, httperr.CodeAddressUnresolved) {
		t.Error("a provider outage is not an unresolved address")
	}
}
