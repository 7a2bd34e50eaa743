package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/persistence/models"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

type gormGeocodeCacheRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGeocodeCacheRepository creates a new GORM-based GeocodeCacheRepository implementation
func NewGormGeocodeCacheRepository(db *gorm.DB, logger logger.Logger) (geo.GeocodeCacheRepository, error) {
	return &gormGeocodeCacheRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGeocodeCacheRepository) Create(ctx context.Context, entry *geo.GeocodeEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GeocodeEntryModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to cache geocode entry: %w", err)
	}

	r.logger.Info("Cached geocode entry for query ", entry.Query)
	return nil
}

// GetByQuery returns the cached entry for a query, or nil without error on a
// cache miss.
func (r *gormGeocodeCacheRepository) GetByQuery(ctx context.Context, query string) (*geo.GeocodeEntry, error) {
	var model models.GeocodeEntryModel
	if err := r.db.WithContext(ctx).Where("query = ?", query).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch geocode entry: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormGeocodeCacheRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("date_time_created < ?", cutoff).Delete(&models.GeocodeEntryModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune geocode cache: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Pruned ", result.RowsAffected, " geocode cache entries")
	}
	return result.RowsAffected, nil
}
