//go:build unit
// +build unit

package horoscope

import (
	"testing"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRuler(t *testing.T) {
	assert.Equal(t, ephemeris.Sun, DayRuler(time.Sunday))
	assert.Equal(t, ephemeris.Moon, DayRuler(time.Monday))
	assert.Equal(t, ephemeris.Mars, DayRuler(time.Tuesday))
	assert.Equal(t, ephemeris.Mercury, DayRuler(time.Wednesday))
	assert.Equal(t, ephemeris.Jupiter, DayRuler(time.Thursday))
	assert.Equal(t, ephemeris.Venus, DayRuler(time.Friday))
	assert.Equal(t, ephemeris.Saturn, DayRuler(time.Saturday))
}

func TestPlanetaryHours(t *testing.T) {
	// A Sunday with sunrise 06:00, sunset 18:00 and next sunrise 06:00
	sunrise := time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)
	nextSunrise := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)

	hours, err := PlanetaryHours(DayRuler(time.Sunday), sunrise, sunset, nextSunrise)
	require.NoError(t, err)
	require.Len(t, hours, 24)

	// First hour carries the day ruler and starts at sunrise
	assert.Equal(t, ephemeris.Sun, hours[0].Ruler)
	assert.Equal(t, sunrise, hours[0].Start)
	assert.True(t, hours[0].Daytime)

	// Chaldean succession: Sun is followed by Venus, then Mercury
	assert.Equal(t, ephemeris.Venus, hours[1].Ruler)
	assert.Equal(t, ephemeris.Mercury, hours[2].Ruler)

	// Hour 13 opens the night at sunset
	assert.Equal(t, sunset, hours[12].Start)
	assert.False(t, hours[12].Daytime)
	assert.Equal(t, ephemeris.Jupiter, hours[12].Ruler)

	// The day closes exactly on the next sunrise
	assert.Equal(t, nextSunrise, hours[23].End)

	// The 25th hour would belong to the Moon, Monday's ruler
	last := hours[23].Ruler
	assert.Equal(t, ephemeris.Mercury, last)
}

func TestPlanetaryHours_UnequalHours(t *testing.T) {
	// A winter day: 8 daylight hours, 16 night hours
	sunrise := time.Date(2024, 12, 21, 8, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 12, 21, 16, 0, 0, 0, time.UTC)
	nextSunrise := time.Date(2024, 12, 22, 8, 0, 0, 0, time.UTC)

	hours, err := PlanetaryHours(DayRuler(time.Saturday), sunrise, sunset, nextSunrise)
	require.NoError(t, err)

	assert.Equal(t, 40*time.Minute, hours[0].End.Sub(hours[0].Start))
	assert.Equal(t, 80*time.Minute, hours[12].End.Sub(hours[12].Start))
}

func TestPlanetaryHours_RejectsDisorderedBoundaries(t *testing.T) {
	sunrise := time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC)
	sunset := sunrise.Add(-time.Hour)
	nextSunrise := sunrise.Add(24 * time.Hour)

	_, err := PlanetaryHours(ephemeris.Sun, sunrise, sunset, nextSunrise)
	require.Error(t, err)
}

func TestHourAt(t *testing.T) {
	sunrise := time.Date(2024, 6, 2, 6, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 2, 18, 0, 0, 0, time.UTC)
	nextSunrise := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)

	hours, err := PlanetaryHours(DayRuler(time.Sunday), sunrise, sunset, nextSunrise)
	require.NoError(t, err)

	hour, err := HourAt(hours, sunrise)
	require.NoError(t, err)
	assert.Equal(t, 1, hour.Index)

	hour, err = HourAt(hours, time.Date(2024, 6, 2, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 7, hour.Index)

	hour, err = HourAt(hours, time.Date(2024, 6, 3, 5, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 24, hour.Index)

	_, err = HourAt(hours, nextSunrise)
	require.Error(t, err)
}
