package astrometry

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// standardAltitude is the geometric altitude of the solar center at rise and
// set: 34 arcminutes of refraction plus a 16 arcminute semi-diameter.
var standardAltitude = unit.AngleFromMin(-50).Deg()

// scanStep is the sampling interval when bracketing horizon crossings. The
// Sun crosses the horizon at most twice per civil day, so brackets this
// narrow cannot miss a crossing.
const scanStep = 20 * time.Minute

type riseSetEngine struct {
	logger logger.Logger
}

// NewRiseSetEngine creates a rise/set engine that scans the apparent solar
// altitude across the local day and refines the horizon crossings.
func NewRiseSetEngine(logger logger.Logger) (horoscope.RiseSetEngine, error) {
	return &riseSetEngine{logger: logger}, nil
}

func (e *riseSetEngine) SolarAltitude(t time.Time, latitude, longitude float64) (float64, error) {
	return solarAltitude(t, latitude, longitude), nil
}

func (e *riseSetEngine) SunTimes(t time.Time, latitude, longitude float64) (time.Time, time.Time, error) {
	year, month, day := t.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	dayEnd := time.Date(year, month, day+1, 0, 0, 0, 0, t.Location())

	altitude := func(at time.Time) float64 {
		return solarAltitude(at, latitude, longitude) - standardAltitude
	}

	var rise, set time.Time
	prev, prevAlt := dayStart, altitude(dayStart)
	for cur := dayStart.Add(scanStep); !cur.After(dayEnd); cur = cur.Add(scanStep) {
		curAlt := altitude(cur)
		switch {
		case prevAlt < 0 && curAlt >= 0 && rise.IsZero():
			rise = bisectCrossing(altitude, prev, cur)
		case prevAlt >= 0 && curAlt < 0 && set.IsZero():
			set = bisectCrossing(altitude, prev, cur)
		}
		prev, prevAlt = cur, curAlt
	}

	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("no sunrise and sunset at latitude %.4f on %s: %w",
			latitude, dayStart.Format("2006-01-02"), horoscope.ErrPolarDayNight)
	}
	return rise, set, nil
}

// solarAltitude returns the apparent altitude of the solar center in
// degrees, without refraction. The horizontal conversion reckons observer
// longitude positive westward.
func solarAltitude(t time.Time, latitude, longitude float64) float64 {
	jdUT := ephemeris.JulianDay(t)
	ra, dec := solar.ApparentEquatorial(TT(jdUT))
	_, h := coord.EqToHz(ra, dec,
		unit.AngleFromDeg(latitude),
		unit.AngleFromDeg(-longitude),
		sidereal.Apparent(jdUT))
	return h.Deg()
}

// bisectCrossing narrows a bracketed sign change of f down to the second.
func bisectCrossing(f func(time.Time) float64, lo, hi time.Time) time.Time {
	loAlt := f(lo)
	for hi.Sub(lo) > time.Second {
		mid := lo.Add(hi.Sub(lo) / 2)
		midAlt := f(mid)
		if (loAlt < 0) == (midAlt < 0) {
			lo, loAlt = mid, midAlt
		} else {
			hi = mid
		}
	}
	return hi.Round(time.Second)
}
