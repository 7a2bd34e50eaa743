//go:build unit
// +build unit

package ephemeris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJulianDay(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2451545.0, JulianDay(j2000), 1e-9)

	newYear1999 := time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 2451179.5, JulianDay(newYear1999), 1e-9)

	// Zone conversions must not shift the instant
	istanbul := time.Date(2000, 1, 1, 15, 0, 0, 0, time.FixedZone("TRT", 3*3600))
	assert.InDelta(t, 2451545.0, JulianDay(istanbul), 1e-9)
}

func TestTimeFromJulianDayRoundTrip(t *testing.T) {
	moment := time.Date(2024, 4, 8, 18, 20, 30, 0, time.UTC)
	back := TimeFromJulianDay(JulianDay(moment))
	assert.WithinDuration(t, moment, back, time.Millisecond)
}
