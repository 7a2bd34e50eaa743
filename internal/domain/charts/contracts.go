package charts

import (
	"context"
	"errors"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
)

// ErrChartNotFound is returned when no chart exists for a requested ID.
var ErrChartNotFound = errors.New("chart not found")

// ChartRepository defines the interface for chart archive storage.
type ChartRepository interface {
	Create(ctx context.Context, record *ChartRecord) error
	List(ctx context.Context, query *ChartQuery) ([]*ChartRecord, error)
	GetByID(ctx context.Context, chartID string) (*ChartRecord, error)
	DeleteByID(ctx context.Context, chartID string) error
}

// ChartArchiveService defines methods for persisting and retrieving charts.
type ChartArchiveService interface {
	// Save stores a computed chart and returns the created record.
	Save(ctx context.Context, chart *horoscope.Chart) (*ChartRecord, error)

	// List retrieves stored chart records considering the query filter.
	List(ctx context.Context, query *ChartQuery) ([]*ChartRecord, error)

	// GetByID retrieves a stored chart record by its unique ID.
	// ErrChartNotFound is returned when no record exists.
	GetByID(ctx context.Context, chartID string) (*ChartRecord, error)

	// DeleteByID removes a stored chart record by ID.
	DeleteByID(ctx context.Context, chartID string) error
}
