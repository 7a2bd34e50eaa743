package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"

	"github.com/google/uuid"
)

// chartArchiveService implements the charts.ChartArchiveService interface for persisting computed charts
type chartArchiveService struct {
	chartRepo charts.ChartRepository
	logger    logger.Logger
}

// NewChartArchiveService creates a new chartArchiveService instance
func NewChartArchiveService(chartRepo charts.ChartRepository, logger logger.Logger) (charts.ChartArchiveService, error) {
	return &chartArchiveService{
		chartRepo: chartRepo,
		logger:    logger,
	}, nil
}

// Save stores a computed chart. Filterable summary columns are denormalized
// from the chart; the chart itself is serialized into the payload.
func (s *chartArchiveService) Save(ctx context.Context, chart *horoscope.Chart) (*charts.ChartRecord, error) {
	payload, err := json.Marshal(chart)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize chart: %w", err)
	}

	record := &charts.ChartRecord{
		ID:              uuid.New().String(),
		DateTimeCreated: time.Now(),
		Question:        chart.Question,
		ChartTime:       chart.UTC,
		JulianDay:       chart.JulianDay,
		Timezone:        chart.Timezone,
		LocationName:    chart.Location.Name,
		Latitude:        chart.Location.Latitude,
		Longitude:       chart.Location.Longitude,
		LocationSource:  chart.Location.Source,
		HouseSystem:     string(chart.HouseSystemUsed),
		Ascendant:       chart.Angles.Ascendant,
		Midheaven:       chart.Angles.Midheaven,
		SunSign:         string(chart.SunSign()),
		MoonSign:        string(chart.MoonSign()),
		Payload:         string(payload),
	}

	if err := s.chartRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to archive chart: %w", err)
	}

	return record, nil
}

// List retrieves stored chart records considering a query filter
func (s *chartArchiveService) List(ctx context.Context, query *charts.ChartQuery) ([]*charts.ChartRecord, error) {
	records, err := s.chartRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return records, nil
}

// GetByID retrieves a stored chart record by ID
func (s *chartArchiveService) GetByID(ctx context.Context, chartID string) (*charts.ChartRecord, error) {
	record, err := s.chartRepo.GetByID(ctx, chartID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

// DeleteByID removes a stored chart record by ID
func (s *chartArchiveService) DeleteByID(ctx context.Context, chartID string) error {
	if err := s.chartRepo.DeleteByID(ctx, chartID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
