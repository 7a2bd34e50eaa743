// Package geo defines location types and the contracts for resolving
// free-text place names into coordinates.
package geo

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Location source labels
const (
	SourceRequest   = "request"
	SourceNominatim = "nominatim"
	SourceCache     = "cache"
	SourceFallback  = "fallback"
)

// Location is a resolved observation site.
type Location struct {
	Name      string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`

	// Source records how the coordinates were obtained: request, nominatim,
	// cache or fallback.
	Source string `json:"source" validate:"required,oneof=request nominatim cache fallback"`
}

// Validate checks coordinate ranges and the source label.
func (l *Location) Validate() error {
	validate := validator.New()
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("validation failed for Location: %w", err)
	}
	return nil
}

// GeocodeEntry is a cached geocoder lookup.
type GeocodeEntry struct {
	ID              string  `validate:"required,uuid4"`
	Query           string  `validate:"required,min=1,max=255"`
	Name            string  `validate:"omitempty,max=255"`
	Latitude        float64 `validate:"min=-90,max=90"`
	Longitude       float64 `validate:"min=-180,max=180"`
	DateTimeCreated time.Time
}

// Validate for validating GeocodeEntry struct
func (e *GeocodeEntry) Validate() error {
	validate := validator.New()

	err := validate.Struct(e)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
