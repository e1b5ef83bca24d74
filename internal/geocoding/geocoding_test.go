package geocoding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubGeocoder struct {
	coord Coordinate
	err   error
}

func (s *stubGeocoder) Geocode(ctx context.Context, city, state, zipCode string) (Coordinate, error) {
	return s.coord, s.err
}

// channelStore signals through stored so tests can wait on the goroutine.
type channelStore struct {
	stored chan [2]float64
}

func newChannelStore() *channelStore {
	return &channelStore{stored: make(chan [2]float64, 1)}
}

func (s *channelStore) UpdateCoordinates(id uint, lat, lng float64) error {
	s.stored <- [2]float64{lat, lng}
	return nil
}

func TestGeocodeAsyncStoresCoordinate(t *testing.T) {
	geocoder := &stubGeocoder{coord: Coordinate{Latitude: 37.7749, Longitude: -122.4194}}
	store := newChannelStore()

	GeocodeAsync(geocoder, store, 1, "San Francisco", "CA", "94103")

	select {
	case got := <-store.stored:
		assert.Equal(t, [2]float64{37.7749, -122.4194}, got)
	case <-time.After(time.Second):
		t.Fatal("coordinate was never stored")
	}
}

func TestGeocodeAsyncFailureStoresNothing(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("quota exceeded")}
	store := newChannelStore()

	GeocodeAsync(geocoder, store, 1, "San Francisco", "CA", "94103")

	select {
	case <-store.stored:
		t.Fatal("failed geocode must not store a coordinate")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGeocodeAsyncSkipsWithoutGeocoderOrCity(t *testing.T) {
	store := newChannelStore()

	GeocodeAsync(nil, store, 1, "San Francisco", "CA", "94103")
	GeocodeAsync(&stubGeocoder{}, store, 1, "", "", "")

	select {
	case <-store.stored:
		t.Fatal("nothing should be stored")
	case <-time.After(50 * time.Millisecond):
	}
}
