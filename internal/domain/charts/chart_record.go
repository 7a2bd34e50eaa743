// Package charts defines the persisted chart archive: the stored record, the
// list query and the contracts the persistence layer implements.
package charts

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ChartRecord is a persisted chart. Summary columns (signs, angles) are
// denormalized for filtering; Payload holds the full serialized chart.
type ChartRecord struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`

	// Question is the horary question the chart was cast for, when given.
	Question string `validate:"omitempty,max=512"`

	// ChartTime is the chart instant in Universal Time.
	ChartTime time.Time `validate:"required"`
	JulianDay float64   `validate:"required"`
	Timezone  string    `validate:"omitempty,max=64"`

	LocationName   string  `validate:"omitempty,max=255"`
	Latitude       float64 `validate:"min=-90,max=90"`
	Longitude      float64 `validate:"min=-180,max=180"`
	LocationSource string  `validate:"omitempty,max=32"`

	HouseSystem string  `validate:"required,oneof=placidus regiomontanus porphyry equal whole_sign"`
	Ascendant   float64 `validate:"min=0,lt=360"`
	Midheaven   float64 `validate:"min=0,lt=360"`
	SunSign     string  `validate:"required"`
	MoonSign    string  `validate:"required"`

	// Payload is the full chart serialized as JSON.
	Payload string `validate:"required"`
}

// Validate for validating ChartRecord struct
func (r *ChartRecord) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// ChartQuery filters and pages chart listings.
type ChartQuery struct {
	SunSign     string `validate:"omitempty"`
	MoonSign    string `validate:"omitempty"`
	HouseSystem string `validate:"omitempty,oneof=placidus regiomontanus porphyry equal whole_sign"`

	// ChartTimeAfter keeps records whose chart instant is at or after the
	// given time.
	ChartTimeAfter time.Time

	Limit     int    `validate:"min=1,max=1000"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created chart_time sun_sign moon_sign"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewChartQuery creates a ChartQuery with default values.
func NewChartQuery() *ChartQuery {
	return &ChartQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating ChartQuery struct
func (q *ChartQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
