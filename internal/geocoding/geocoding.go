// Package geocoding resolves a city/state/zip address to a coordinate using
// the Google Maps Geocoding API. Geocoding is best effort: it runs out of
// band after account writes, and failures are logged, never returned to the
// caller that triggered them.
package geocoding

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pawsconnect/backend/internal/apperror"
	"googlemaps.github.io/maps"
)

// Coordinate is a geocoded point.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves an address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, city, state, zipCode string) (Coordinate, error)
}

// GoogleGeocoder implements Geocoder over the Google Maps client.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a GoogleGeocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode resolves "city, state, zip" to a coordinate. Returns
// ErrGeocodingUnavailable when the service fails or finds nothing.
func (g *GoogleGeocoder) Geocode(ctx context.Context, city, state, zipCode string) (Coordinate, error) {
	address := strings.Join([]string{city, state, zipCode}, ", ")
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %v", apperror.ErrGeocodingUnavailable, err)
	}
	if len(results) == 0 {
		return Coordinate{}, fmt.Errorf("%w: no results for %q", apperror.ErrGeocodingUnavailable, address)
	}
	loc := results[0].Geometry.Location
	return Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

// CoordinateStore is the slice of the user store the async hook writes to.
type CoordinateStore interface {
	UpdateCoordinates(id uint, lat, lng float64) error
}

// GeocodeAsync geocodes a user's address in the background and stores the
// result. Fire and forget: the record keeps a null coordinate until a later
// attempt succeeds, and is excluded from distance filters until then.
func GeocodeAsync(geocoder Geocoder, store CoordinateStore, userID uint, city, state, zipCode string) {
	if geocoder == nil || city == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		coord, err := geocoder.Geocode(ctx, city, state, zipCode)
		if err != nil {
			log.Printf("geocoding failed for user %d: %v", userID, err)
			return
		}
		if err := store.UpdateCoordinates(userID, coord.Latitude, coord.Longitude); err != nil {
			log.Printf("storing coordinates for user %d: %v", userID, err)
		}
	}()
}
