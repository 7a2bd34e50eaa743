package horoscope

import (
	"context"
	"errors"
	"time"
)

// ErrPolarDayNight is returned when the Sun neither rises nor sets on the
// requested day, so no planetary hour table exists. Charts omit the hour
// ruler in that case.
var ErrPolarDayNight = errors.New("sun does not rise and set at this latitude and date")

// HouseEngine computes house cusps for a sidereal moment and place.
type HouseEngine interface {
	// Cusps returns the twelve cusps and the chart angles for a Julian Day
	// in Universal Time at the given geographic coordinates (east positive).
	// Quadrant systems return ErrCircumpolar at latitudes where they are
	// undefined.
	Cusps(jdUT float64, latitude, longitude float64, system HouseSystem) (*Cusps, error)
}

// RiseSetEngine locates solar rise and set instants for an observation site.
type RiseSetEngine interface {
	// SunTimes returns sunrise and sunset for the local calendar day holding
	// t, in t's own timezone. ErrPolarDayNight is returned when the Sun
	// stays above or below the horizon all day.
	SunTimes(t time.Time, latitude, longitude float64) (rise, set time.Time, err error)

	// SolarAltitude returns the apparent altitude of the Sun in degrees at
	// the instant t, negative below the horizon.
	SolarAltitude(t time.Time, latitude, longitude float64) (float64, error)
}

// ComputeService defines chart computation operations.
type ComputeService interface {
	// Compute casts a full horary chart for the given input. Free-text
	// locations are resolved through the geocoder; resolution failures fall
	// back to the configured default location rather than erroring.
	Compute(ctx context.Context, input *ChartInput) (*Chart, error)

	// Positions returns raw geocentric positions for a moment, without any
	// location-dependent chart work.
	Positions(ctx context.Context, input *PositionsInput) (*PositionSet, error)
}
