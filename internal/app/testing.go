//go:build integration
// +build integration

package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/astrometry"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/geocoding"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test geocoder constants: the stub Nominatim server resolves every query to
// these coordinates (central London), and failures fall back to Istanbul.
const (
	TestGeocodedName      = "London, Greater London, England, United Kingdom"
	TestGeocodedLatitude  = 51.5074
	TestGeocodedLongitude = -0.1278

	TestFallbackName      = "Istanbul"
	TestFallbackLatitude  = 41.0082
	TestFallbackLongitude = 28.9784
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ComputeService horoscope.ComputeService
	ArchiveService charts.ChartArchiveService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration
// tests. The position provider runs on the built-in planetary theory and the
// geocoder talks to a stub Nominatim server started for the test.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup stub Nominatim server
	nominatim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]string{{
			"display_name": TestGeocodedName,
			"lat":          "51.5074",
			"lon":          "-0.1278",
		}})
	}))
	t.Cleanup(nominatim.Close)

	// Setup astronomical engines
	ephemerisSettings := &config.EphemerisSettings{
		DataPath:    "",
		HouseSystem: "placidus",
	}
	positionProvider, err := astrometry.NewPositionProvider(ephemerisSettings, logger)
	require.NoError(t, err, "Failed to create position provider")

	houseEngine, err := astrometry.NewHouseEngine(logger)
	require.NoError(t, err, "Failed to create house engine")

	riseSetEngine, err := astrometry.NewRiseSetEngine(logger)
	require.NoError(t, err, "Failed to create rise/set engine")

	// Setup geocoder backed by the stub server and the cache repository
	geocoderSettings := &config.GeocoderSettings{
		BaseURL:           nominatim.URL,
		UserAgent:         "horary_astrology_app",
		TimeoutSeconds:    5,
		FallbackName:      TestFallbackName,
		FallbackLatitude:  TestFallbackLatitude,
		FallbackLongitude: TestFallbackLongitude,
		CacheEnabled:      true,
	}
	geocoder, err := geocoding.NewNominatimGeocoder(geocoderSettings, dbContext.GeocodeRepo, logger)
	require.NoError(t, err, "Failed to create geocoder")

	// Initialize application services
	computeService, err := NewHoroscopeComputeService(
		positionProvider,
		houseEngine,
		riseSetEngine,
		geocoder,
		logger,
	)
	require.NoError(t, err, "Failed to create ComputeService")

	archiveService, err := NewChartArchiveService(dbContext.ChartRepo, logger)
	require.NoError(t, err, "Failed to create ChartArchiveService")

	return &TestServices{
		ComputeService: computeService,
		ArchiveService: archiveService,
		DBContext:      dbContext,
	}
}
