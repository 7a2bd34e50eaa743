//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence/models"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/testutil"
)

// Test constants
const (
	TestHouseSystemPlacidus  = "placidus"
	TestHouseSystemPorphyry  = "porphyry"
	TestHouseSystemWholeSign = "whole_sign"

	TestSunSignAries   = "Aries"
	TestSunSignTaurus  = "Taurus"
	TestMoonSignCancer = "Cancer"
	TestMoonSignLibra  = "Libra"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	ChartRepo   charts.ChartRepository
	GeocodeRepo geo.GeocodeCacheRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.ChartModel{}, &models.GeocodeEntryModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	chartRepo, err := NewGormChartRepository(db, logger)
	require.NoError(t, err, "Failed to create chart repository")

	geocodeRepo, err := NewGormGeocodeCacheRepository(db, logger)
	require.NoError(t, err, "Failed to create geocode cache repository")

	return &TestContext{
		DB:          db,
		ChartRepo:   chartRepo,
		GeocodeRepo: geocodeRepo,
	}
}

// CreateTestChartRecord creates a chart record with default values
func CreateTestChartRecord(t *testing.T, question string) *charts.ChartRecord {
	t.Helper()

	return CreateTestChartRecordWithOptions(t, question, TestSunSignAries, TestMoonSignCancer,
		TestHouseSystemPlacidus, time.Date(2024, 4, 8, 18, 20, 0, 0, time.UTC))
}

// CreateTestChartRecordWithOptions creates a chart record with custom options
func CreateTestChartRecordWithOptions(t *testing.T, question, sunSign, moonSign, houseSystem string, chartTime time.Time) *charts.ChartRecord {
	t.Helper()

	return &charts.ChartRecord{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		Question:        question,
		ChartTime:       chartTime,
		JulianDay:       2460409.263888889,
		Timezone:        "UTC",
		LocationName:    "İstanbul, Türkiye",
		Latitude:        41.0082,
		Longitude:       28.9784,
		LocationSource:  "fallback",
		HouseSystem:     houseSystem,
		Ascendant:       201.442,
		Midheaven:       112.871,
		SunSign:         sunSign,
		MoonSign:        moonSign,
		Payload:         `{"bodies":[],"aspects":[]}`,
	}
}

// CreateTestGeocodeEntry creates a geocode cache entry with default values
func CreateTestGeocodeEntry(t *testing.T, query string) *geo.GeocodeEntry {
	t.Helper()

	return &geo.GeocodeEntry{
		ID:              uuid.NewString(),
		Query:           query,
		Name:            "İstanbul, Türkiye",
		Latitude:        41.0082,
		Longitude:       28.9784,
		DateTimeCreated: time.Now(),
	}
}
