package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/charts"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence/models"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

type gormChartRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormChartRepository creates a new GORM-based ChartRepository implementation
func NewGormChartRepository(db *gorm.DB, logger logger.Logger) (charts.ChartRepository, error) {
	return &gormChartRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormChartRepository) Create(ctx context.Context, record *charts.ChartRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ChartModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to archive chart: %w", err)
	}

	r.logger.Info("Archived chart with id ", record.ID)
	return nil
}

func (r *gormChartRepository) List(ctx context.Context, query *charts.ChartQuery) ([]*charts.ChartRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ChartModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ChartModel{})

	if query.SunSign != "" {
		dbQuery = dbQuery.Where("sun_sign = ?", query.SunSign)
	}
	if query.MoonSign != "" {
		dbQuery = dbQuery.Where("moon_sign = ?", query.MoonSign)
	}
	if query.HouseSystem != "" {
		dbQuery = dbQuery.Where("house_system = ?", query.HouseSystem)
	}
	if !query.ChartTimeAfter.IsZero() {
		dbQuery = dbQuery.Where("chart_time >= ?", query.ChartTimeAfter)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch chart records: %w", err)
	}

	domainList := make([]*charts.ChartRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormChartRepository) GetByID(ctx context.Context, chartID string) (*charts.ChartRecord, error) {
	var model models.ChartModel
	if err := r.db.WithContext(ctx).Where("id = ?", chartID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("chart with ID %s: %w", chartID, charts.ErrChartNotFound)
		}
		return nil, fmt.Errorf("failed to fetch chart record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormChartRepository) DeleteByID(ctx context.Context, chartID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", chartID).Delete(&models.ChartModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete chart record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("chart with ID %s: %w", chartID, charts.ErrChartNotFound)
	}

	r.logger.Info("Deleted chart with id ", chartID)
	return nil
}
