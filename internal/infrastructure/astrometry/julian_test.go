//go:build unit
// +build unit

package astrometry

import (
	"testing"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"

	"github.com/stretchr/testify/assert"
)

func TestDeltaT(t *testing.T) {
	jdAt := func(year int) float64 {
		return ephemeris.JulianDay(time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC))
	}

	// Observed values: 63.8s around 2000, 31.1s around 1955, and the well
	// known negative dip at the start of the 20th century.
	assert.InDelta(t, 63.9, DeltaT(jdAt(2000)), 0.5)
	assert.InDelta(t, 31.1, DeltaT(jdAt(1955)), 0.6)
	assert.Less(t, DeltaT(jdAt(1900)), 0.0)
	assert.Greater(t, DeltaT(jdAt(1900)), -5.0)

	// The difference keeps growing through the present era
	prev := DeltaT(jdAt(1990))
	for year := 1995; year <= 2050; year += 5 {
		cur := DeltaT(jdAt(year))
		assert.Greater(t, cur, prev, "DeltaT should grow toward %d", year)
		prev = cur
	}
}

func TestTTExceedsUT(t *testing.T) {
	jdUT := ephemeris.JulianDay(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Greater(t, TT(jdUT), jdUT)
	// roughly 70 seconds in 2024
	assert.InDelta(t, 70.0/86400, TT(jdUT)-jdUT, 10.0/86400)
}
