//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
)

func TestChartPsqlRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	record := CreateTestChartRecord(t, "Will the contract be signed?")

	err := ctx.ChartRepo.Create(context.Background(), record)
	require.NoError(t, err)

	fetched, err := ctx.ChartRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, record.Payload, fetched.Payload)
	assert.Equal(t, record.SunSign, fetched.SunSign)
}

func TestChartPsqlRepository_ListAndDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	record := CreateTestChartRecord(t, "")
	require.NoError(t, ctx.ChartRepo.Create(context.Background(), record))

	listed, err := ctx.ChartRepo.List(context.Background(), charts.NewChartQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, ctx.ChartRepo.DeleteByID(context.Background(), record.ID))

	_, err = ctx.ChartRepo.GetByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, charts.ErrChartNotFound)
}
