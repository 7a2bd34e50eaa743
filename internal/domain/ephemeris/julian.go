package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// JulianDay converts an instant to a Julian Day on the universal time scale.
// The zone of t does not matter; the same instant always maps to the same
// Julian Day.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// TimeFromJulianDay converts a Julian Day on the universal time scale back
// to an instant in UTC.
func TimeFromJulianDay(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
