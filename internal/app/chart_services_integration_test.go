//go:build integration
// +build integration

package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
)

// computeTestChart casts a fixed chart to feed the archive tests.
func computeTestChart(t *testing.T, services *TestServices) *horoscope.Chart {
	t.Helper()

	input := &horoscope.ChartInput{
		Date:      "2024-04-08",
		Time:      "12:00",
		Latitude:  floatPtr(TestGeocodedLatitude),
		Longitude: floatPtr(TestGeocodedLongitude),
		Question:  "Will I find the lost keys?",
	}

	chart, err := services.ComputeService.Compute(context.Background(), input)
	require.NoError(t, err)
	return chart
}

func TestChartArchiveService_SaveAndGet(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	chart := computeTestChart(t, services)

	record, err := services.ArchiveService.Save(ctx, chart)
	require.NoError(t, err)

	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err, "record ID should be a UUID")
	assert.Equal(t, "Will I find the lost keys?", record.Question)
	assert.Equal(t, chart.UTC, record.ChartTime)
	assert.Equal(t, chart.JulianDay, record.JulianDay)
	assert.Equal(t, "placidus", record.HouseSystem)
	assert.Equal(t, string(ephemeris.Aries), record.SunSign)
	assert.Equal(t, string(ephemeris.Aries), record.MoonSign)
	assert.Equal(t, chart.Angles.Ascendant, record.Ascendant)
	assert.Equal(t, chart.Angles.Midheaven, record.Midheaven)
	assert.Equal(t, TestGeocodedLatitude, record.Latitude)
	assert.Equal(t, TestGeocodedLongitude, record.Longitude)
	assert.Equal(t, "request", record.LocationSource)

	fetched, err := services.ArchiveService.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, record.SunSign, fetched.SunSign)

	// The payload must round-trip back into the chart.
	var stored horoscope.Chart
	require.NoError(t, json.Unmarshal([]byte(fetched.Payload), &stored))
	assert.Equal(t, chart.JulianDay, stored.JulianDay)
	assert.Equal(t, chart.Angles.Ascendant, stored.Angles.Ascendant)
	assert.Len(t, stored.Bodies, len(ephemeris.ChartBodies))
	assert.Equal(t, chart.Moon.Phase, stored.Moon.Phase)
}

func TestChartArchiveService_ListAndFilter(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	chart := computeTestChart(t, services)
	for i := 0; i < 3; i++ {
		_, err := services.ArchiveService.Save(ctx, chart)
		require.NoError(t, err)
	}

	query := charts.NewChartQuery()
	records, err := services.ArchiveService.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	query = charts.NewChartQuery()
	query.SunSign = string(ephemeris.Aries)
	records, err = services.ArchiveService.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	query = charts.NewChartQuery()
	query.SunSign = string(ephemeris.Scorpio)
	records, err = services.ArchiveService.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestChartArchiveService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	chart := computeTestChart(t, services)
	record, err := services.ArchiveService.Save(ctx, chart)
	require.NoError(t, err)

	require.NoError(t, services.ArchiveService.DeleteByID(ctx, record.ID))

	_, err = services.ArchiveService.GetByID(ctx, record.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, charts.ErrChartNotFound)

	err = services.ArchiveService.DeleteByID(ctx, record.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, charts.ErrChartNotFound)
}

func TestChartArchiveService_GetByID_NotFound(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.ArchiveService.GetByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, charts.ErrChartNotFound)
}
