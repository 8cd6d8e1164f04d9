package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SweepOpsFR/sweep-scheduler/internal/httperr"
)

// Location is a resolved address.
type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"label"`
}

type Geocoder interface {
	// Resolve returns address_unresolved when the provider finds nothing.
	Resolve(ctx context.Context, address string) (*Location, error)
}

// ======================================================
// HTTP GEOCODER (BAN-compatible /search endpoint)
// ======================================================

type HTTPGeocoder struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGeocoder(baseURL string) *HTTPGeocoder {
	return &HTTPGeocoder{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// banResponse is the GeoJSON shape of the adresse.data.gouv.fr search API.
// Coordinates come as [lng, lat].
type banResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string  `json:"label"`
			Score float64 `json:"score"`
		} `json:"properties"`
	} `json:"features"`
}

func (g *HTTPGeocoder) Resolve(ctx context.Context, address string) (*Location, error) {
	endpoint := fmt.Sprintf(
		"%s/search?q=%s&limit=1",
		g.baseURL,
		url.QueryEscape(address),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var body banResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	if len(body.Features) == 0 || len(body.Features[0].Geometry.Coordinates) < 2 {
		return nil, httperr.ErrBusiness(httperr.CodeAddressUnresolved)
	}

	f := body.Features[0]
	return &Location{
		Lat:   f.Geometry.Coordinates[1],
		Lng:   f.Geometry.Coordinates[0],
		Label: f.Properties.Label,
	}, nil
}
