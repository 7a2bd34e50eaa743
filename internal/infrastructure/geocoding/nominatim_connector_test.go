//go:build unit
// +build unit

package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/testutil"
)

type MockGeocodeCacheRepository struct {
	mock.Mock
}

func (m *MockGeocodeCacheRepository) Create(ctx context.Context, entry *geo.GeocodeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockGeocodeCacheRepository) GetByQuery(ctx context.Context, query string) (*geo.GeocodeEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geo.GeocodeEntry), args.Error(1)
}

func (m *MockGeocodeCacheRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func geocoderSettings(baseURL string, cacheEnabled bool) *config.GeocoderSettings {
	return &config.GeocoderSettings{
		BaseURL:           baseURL,
		UserAgent:         "horary_astrology_app",
		TimeoutSeconds:    5,
		FallbackName:      "İstanbul, Türkiye",
		FallbackLatitude:  41.0082,
		FallbackLongitude: 28.9784,
		CacheEnabled:      cacheEnabled,
	}
}

func setupGeocoder(t *testing.T, baseURL string, cache geo.GeocodeCacheRepository, cacheEnabled bool) geo.Geocoder {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	geocoder, err := NewNominatimGeocoder(geocoderSettings(baseURL, cacheEnabled), cache, logger)
	require.NoError(t, err)
	return geocoder
}

func assertFallback(t *testing.T, location *geo.Location) {
	t.Helper()
	assert.Equal(t, geo.SourceFallback, location.Source)
	assert.Equal(t, "İstanbul, Türkiye", location.Name)
	assert.InDelta(t, 41.0082, location.Latitude, 1e-9)
	assert.InDelta(t, 28.9784, location.Longitude, 1e-9)
}

func TestResolveSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "london, uk", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "horary_astrology_app", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"display_name":"London, Greater London, England, UK","lat":"51.5074","lon":"-0.1278"}]`)
	}))
	defer server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "  London,   UK ")
	require.NoError(t, err)

	assert.Equal(t, geo.SourceNominatim, location.Source)
	assert.Equal(t, "London, Greater London, England, UK", location.Name)
	assert.InDelta(t, 51.5074, location.Latitude, 1e-9)
	assert.InDelta(t, -0.1278, location.Longitude, 1e-9)
}

func TestResolveUsesCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("cached lookups must not reach the geocoder")
	}))
	defer server.Close()

	cache := new(MockGeocodeCacheRepository)
	cache.On("GetByQuery", mock.Anything, "ankara").Return(&geo.GeocodeEntry{
		ID:        "6f9a2efc-2a3d-43d4-97a1-9f77f1f15a61",
		Query:     "ankara",
		Name:      "Ankara, Türkiye",
		Latitude:  39.9334,
		Longitude: 32.8597,
	}, nil)

	geocoder := setupGeocoder(t, server.URL, cache, true)

	location, err := geocoder.Resolve(context.Background(), "Ankara")
	require.NoError(t, err)

	assert.Equal(t, geo.SourceCache, location.Source)
	assert.Equal(t, "Ankara, Türkiye", location.Name)
	assert.InDelta(t, 39.9334, location.Latitude, 1e-9)
	cache.AssertExpectations(t)
}

func TestResolveStoresSuccessfulLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"display_name":"Paris, Île-de-France, France","lat":"48.8566","lon":"2.3522"}]`)
	}))
	defer server.Close()

	cache := new(MockGeocodeCacheRepository)
	cache.On("GetByQuery", mock.Anything, "paris").Return(nil, fmt.Errorf("not found"))
	cache.On("Create", mock.Anything, mock.MatchedBy(func(entry *geo.GeocodeEntry) bool {
		return entry.Query == "paris" &&
			entry.Name == "Paris, Île-de-France, France" &&
			entry.Latitude == 48.8566 && entry.Longitude == 2.3522 &&
			entry.ID != ""
	})).Return(nil)

	geocoder := setupGeocoder(t, server.URL, cache, true)

	location, err := geocoder.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, geo.SourceNominatim, location.Source)
	cache.AssertExpectations(t)
}

func TestResolveFallsBackOnEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "nowhere that exists")
	require.NoError(t, err)
	assertFallback(t, location)
}

func TestResolveFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "Berlin")
	require.NoError(t, err)
	assertFallback(t, location)
}

func TestResolveFallsBackOnUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "Berlin")
	require.NoError(t, err)
	assertFallback(t, location)
}

func TestResolveFallsBackOnMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"display_name":"Broken","lat":"not-a-number","lon":"2.0"}]`)
	}))
	defer server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "Broken")
	require.NoError(t, err)
	assertFallback(t, location)
}

func TestResolveEmptyNameSkipsLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("empty names must not reach the geocoder")
	}))
	defer server.Close()

	geocoder := setupGeocoder(t, server.URL, nil, false)

	location, err := geocoder.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	assertFallback(t, location)
}

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "london, uk", normalizeQuery("  London,   UK "))
	assert.Equal(t, "", normalizeQuery("   "))
	assert.Equal(t, "istanbul", normalizeQuery("Istanbul"))
}
