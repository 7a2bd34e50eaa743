package horoscope

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Angles are the four cardinal points of a chart.
type Angles struct {
	Ascendant  float64 `json:"ascendant"`
	Midheaven  float64 `json:"midheaven"`
	Descendant float64 `json:"descendant"`
	ImumCoeli  float64 `json:"imum_coeli"`
}

// BodyPlacement couples an ephemeris position with its chart placement.
type BodyPlacement struct {
	ephemeris.BodyPosition

	Sign       ephemeris.Sign `json:"sign"`
	SignDegree float64        `json:"sign_degree"`
	House      int            `json:"house"`
	Dignity    Dignity        `json:"dignity"`
}

// Rulers collects the rulership pointers horary judgement starts from.
type Rulers struct {
	// Day rules the planetary day the chart falls in.
	Day ephemeris.Body `json:"day"`

	// Hour rules the planetary hour; empty when rise and set are undefined
	// (polar day or night) and the hour table cannot be built.
	Hour      ephemeris.Body `json:"hour,omitempty"`
	HourIndex int            `json:"hour_index,omitempty"`

	// Ascendant is the ruler of the rising sign, the querent's significator.
	Ascendant ephemeris.Body `json:"ascendant"`
}

// Chart is a fully computed horary chart. The json tags define the wire
// form charts are served and archived in.
type Chart struct {
	// Moment is the chart instant in its display timezone; UTC carries the
	// same instant in Universal Time.
	Moment    time.Time    `json:"moment"`
	UTC       time.Time    `json:"utc"`
	JulianDay float64      `json:"julian_day"`
	Timezone  string       `json:"timezone"`
	Location  geo.Location `json:"location"`
	Question  string       `json:"question,omitempty"`

	HouseSystemRequested HouseSystem `json:"house_system_requested"`
	HouseSystemUsed      HouseSystem `json:"house_system_used"`

	// FullPrecision records whether the VSOP87 data set backed the positions.
	FullPrecision bool `json:"full_precision"`

	Bodies  []BodyPlacement `json:"bodies"`
	Angles  Angles          `json:"angles"`
	Cusps   [12]float64     `json:"cusps"`
	Aspects []Aspect        `json:"aspects"`
	Moon    MoonInfo        `json:"moon"`
	Rulers  Rulers          `json:"rulers"`
	Fortune FortunePoint    `json:"part_of_fortune"`
}

// SunSign returns the zodiac sign of the Sun, or the empty sign when the
// chart carries no bodies.
func (c *Chart) SunSign() ephemeris.Sign {
	return c.signOf(ephemeris.Sun)
}

// MoonSign returns the zodiac sign of the Moon.
func (c *Chart) MoonSign() ephemeris.Sign {
	return c.signOf(ephemeris.Moon)
}

func (c *Chart) signOf(body ephemeris.Body) ephemeris.Sign {
	for _, placement := range c.Bodies {
		if placement.Body == body {
			return placement.Sign
		}
	}
	return ""
}

// ChartInput describes the moment and place a chart is cast for. Every field
// is optional: a missing date and time means "now" (the horary convention),
// and a missing location resolves to the configured fallback.
type ChartInput struct {
	// Date in YYYY-MM-DD form.
	Date string `validate:"omitempty,civilDateValidation"`

	// Time in HH:MM or HH:MM:SS form.
	Time string `validate:"omitempty,civilTimeValidation"`

	// Timezone is an IANA zone name such as Europe/Istanbul. Defaults to UTC.
	Timezone string `validate:"omitempty,timezoneValidation"`

	// LocationName is free text resolved through the geocoder. Explicit
	// coordinates take precedence when both are given.
	LocationName string   `validate:"omitempty,max=255"`
	Latitude     *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude    *float64 `validate:"omitempty,min=-180,max=180"`

	HouseSystem string `validate:"omitempty,oneof=placidus regiomontanus porphyry equal whole_sign"`

	// Question is the horary question the chart is cast for.
	Question string `validate:"omitempty,max=512"`
}

// HasCoordinates reports whether both latitude and longitude are set.
func (in *ChartInput) HasCoordinates() bool {
	return in.Latitude != nil && in.Longitude != nil
}

// Validate for validating ChartInput struct
func (in *ChartInput) Validate() error {
	validate := validator.New()

	if err := registerInputValidators(validate); err != nil {
		return err
	}

	err := validate.Struct(in)
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

	if (in.Latitude == nil) != (in.Longitude == nil) {
		return fmt.Errorf("validation failed: latitude and longitude must be given together")
	}

	return nil
}

// PositionsInput describes the moment raw positions are requested for.
type PositionsInput struct {
	Date     string `validate:"omitempty,civilDateValidation"`
	Time     string `validate:"omitempty,civilTimeValidation"`
	Timezone string `validate:"omitempty,timezoneValidation"`
}

// Validate for validating PositionsInput struct
func (in *PositionsInput) Validate() error {
	validate := validator.New()

	if err := registerInputValidators(validate); err != nil {
		return err
	}

	err := validate.Struct(in)
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

// PositionSet is the computed answer to a PositionsInput.
type PositionSet struct {
	Moment        time.Time                `json:"moment"`
	UTC           time.Time                `json:"utc"`
	JulianDay     float64                  `json:"julian_day"`
	Timezone      string                   `json:"timezone"`
	FullPrecision bool                     `json:"full_precision"`
	Positions     []ephemeris.BodyPosition `json:"positions"`
}

func registerInputValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("timezoneValidation", validators.TimezoneValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("civilDateValidation", validators.CivilDateValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("civilTimeValidation", validators.CivilTimeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	return nil
}
