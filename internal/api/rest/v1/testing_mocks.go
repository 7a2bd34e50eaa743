//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"

	"github.com/stretchr/testify/mock"
)

// MockComputeService is a mock implementation of ComputeService
type MockComputeService struct {
	mock.Mock
}

func (m *MockComputeService) Compute(ctx context.Context, input *horoscope.ChartInput) (*horoscope.Chart, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horoscope.Chart), args.Error(1)
}

func (m *MockComputeService) Positions(ctx context.Context, input *horoscope.PositionsInput) (*horoscope.PositionSet, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*horoscope.PositionSet), args.Error(1)
}

// MockChartArchiveService is a mock implementation of ChartArchiveService
type MockChartArchiveService struct {
	mock.Mock
}

func (m *MockChartArchiveService) Save(ctx context.Context, chart *horoscope.Chart) (*charts.ChartRecord, error) {
	args := m.Called(ctx, chart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charts.ChartRecord), args.Error(1)
}

func (m *MockChartArchiveService) List(ctx context.Context, query *charts.ChartQuery) ([]*charts.ChartRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*charts.ChartRecord), args.Error(1)
}

func (m *MockChartArchiveService) GetByID(ctx context.Context, chartID string) (*charts.ChartRecord, error) {
	args := m.Called(ctx, chartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charts.ChartRecord), args.Error(1)
}

func (m *MockChartArchiveService) DeleteByID(ctx context.Context, chartID string) error {
	args := m.Called(ctx, chartID)
	return args.Error(0)
}
