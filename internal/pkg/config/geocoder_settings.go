package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GeocoderSettings holds settings for the location resolution service
type GeocoderSettings struct {
	BaseURL           string  `mapstructure:"base_url" validate:"required,url"`
	UserAgent         string  `mapstructure:"user_agent" validate:"required"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds" validate:"required,min=1,max=60"`
	FallbackName      string  `mapstructure:"fallback_name" validate:"required"`
	FallbackLatitude  float64 `mapstructure:"fallback_latitude" validate:"min=-90,max=90"`
	FallbackLongitude float64 `mapstructure:"fallback_longitude" validate:"min=-180,max=180"`
	CacheEnabled      bool    `mapstructure:"cache_enabled"`
	// CacheMaxAgeDays prunes cached lookups older than the given number of
	// days on startup. Zero keeps entries forever.
	CacheMaxAgeDays int `mapstructure:"cache_max_age_days" validate:"min=0,max=3650"`
}

// Validate checks that all fields in GeocoderSettings are valid
func (s *GeocoderSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for GeocoderSettings: %w", err)
	}

	return nil
}
