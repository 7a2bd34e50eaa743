//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
)

func TestGeocodeSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	entry := CreateTestGeocodeEntry(t, "istanbul")
	require.NoError(t, ctx.GeocodeRepo.Create(context.Background(), entry))

	fetched, err := ctx.GeocodeRepo.GetByQuery(context.Background(), "istanbul")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, entry.ID, fetched.ID)
	assert.InDelta(t, entry.Latitude, fetched.Latitude, 1e-9)
	assert.InDelta(t, entry.Longitude, fetched.Longitude, 1e-9)
}

func TestGeocodeSqliteRepository_GetByQuery_Miss(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	fetched, err := ctx.GeocodeRepo.GetByQuery(context.Background(), "unknown place")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestGeocodeSqliteRepository_UniqueQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestGeocodeEntry(t, "ankara")
	require.NoError(t, ctx.GeocodeRepo.Create(context.Background(), first))

	duplicate := CreateTestGeocodeEntry(t, "ankara")
	err := ctx.GeocodeRepo.Create(context.Background(), duplicate)
	assert.Error(t, err, "query column is unique")
}

func TestGeocodeSqliteRepository_DeleteOlderThan(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	stale := CreateTestGeocodeEntry(t, "old town")
	stale.DateTimeCreated = time.Now().AddDate(0, 0, -45)
	fresh := CreateTestGeocodeEntry(t, "new town")

	require.NoError(t, ctx.GeocodeRepo.Create(context.Background(), stale))
	require.NoError(t, ctx.GeocodeRepo.Create(context.Background(), fresh))

	pruned, err := ctx.GeocodeRepo.DeleteOlderThan(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	gone, err := ctx.GeocodeRepo.GetByQuery(context.Background(), "old town")
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := ctx.GeocodeRepo.GetByQuery(context.Background(), "new town")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
