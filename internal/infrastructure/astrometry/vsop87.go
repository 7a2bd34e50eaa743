package astrometry

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/apparent"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

var vsop87Planets = []struct {
	body  ephemeris.Body
	index int
}{
	{ephemeris.Mercury, pp.Mercury},
	{ephemeris.Venus, pp.Venus},
	{ephemeris.Mars, pp.Mars},
	{ephemeris.Jupiter, pp.Jupiter},
	{ephemeris.Saturn, pp.Saturn},
	{ephemeris.Uranus, pp.Uranus},
	{ephemeris.Neptune, pp.Neptune},
}

// vsop87Sources builds the source table of the full-precision mode. Earth is
// required since every other source measures from it; any other planet whose
// data file is missing keeps its built-in source.
func vsop87Sources(path string, builtin map[ephemeris.Body]sourceFunc, logger logger.Logger) (map[ephemeris.Body]sourceFunc, int, error) {
	earth, err := pp.LoadPlanetPath(pp.Earth, path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load VSOP87 earth data: %w", err)
	}

	sources := make(map[ephemeris.Body]sourceFunc, len(builtin))
	for body, src := range builtin {
		sources[body] = src
	}
	sources[ephemeris.Sun] = vsopSunSource(earth)
	sources[ephemeris.Pluto] = vsopPlutoSource(earth)

	loaded := 1
	for _, entry := range vsop87Planets {
		p, err := pp.LoadPlanetPath(entry.index, path)
		if err != nil {
			logger.Warn(fmt.Sprintf("VSOP87 data missing for %s, keeping built-in series for it: %v", entry.body, err))
			continue
		}
		sources[entry.body] = vsopPlanetSource(p, earth)
		loaded++
	}
	return sources, loaded, nil
}

func vsopSunSource(earth *pp.V87Planet) sourceFunc {
	return func(jde float64) (float64, float64, float64, error) {
		s, lat, r := solar.ApparentVSOP87(earth, jde)
		return s.Mod1().Deg(), lat.Deg(), r, nil
	}
}

// vsopPlanetSource computes an apparent geocentric position the way the
// meeus elliptic package does, keeping ecliptic rather than equatorial
// coordinates: geometric vectors of date, one light-time step, aberration,
// FK5 correction and nutation in longitude.
func vsopPlanetSource(p, earth *pp.V87Planet) sourceFunc {
	return func(jde float64) (float64, float64, float64, error) {
		l0, b0, r0 := earth.Position(jde)
		sB0, cB0 := b0.Sincos()
		sL0, cL0 := l0.Sincos()

		geocentric := func(at float64) (x, y, z float64) {
			l, b, r := p.Position(at)
			sB, cB := b.Sincos()
			sL, cL := l.Sincos()
			x = r*cB*cL - r0*cB0*cL0
			y = r*cB*sL - r0*cB0*sL0
			z = r*sB - r0*sB0
			return x, y, z
		}

		x, y, z := geocentric(jde)
		dist := math.Sqrt(x*x + y*y + z*z)
		x, y, z = geocentric(jde - base.LightTime(dist))
		dist = math.Sqrt(x*x + y*y + z*z)

		lon := unit.Angle(math.Atan2(y, x))
		lat := unit.Angle(math.Atan2(z, math.Hypot(x, y)))
		dLon, dLat := apparent.EclipticAberration(lon, lat, jde)
		lon, lat = pp.ToFK5(lon+dLon, lat+dLat, jde)
		dPsi, _ := nutation.Nutation(jde)
		return (lon + dPsi).Mod1().Deg(), lat.Deg(), dist, nil
	}
}

// vsopPlutoSource pairs the dedicated Pluto theory, which works in the J2000
// frame, with VSOP87 earth coordinates for the same frame.
func vsopPlutoSource(earth *pp.V87Planet) sourceFunc {
	return func(jde float64) (float64, float64, float64, error) {
		l0, b0, r0 := earth.Position2000(jde)
		sB0, cB0 := b0.Sincos()
		sL0, cL0 := l0.Sincos()

		geocentric := func(at float64) (x, y, z float64) {
			l, b, r := pluto.Heliocentric(at)
			sB, cB := b.Sincos()
			sL, cL := l.Sincos()
			x = r*cB*cL - r0*cB0*cL0
			y = r*cB*sL - r0*cB0*sL0
			z = r*sB - r0*sB0
			return x, y, z
		}

		x, y, z := geocentric(jde)
		dist := math.Sqrt(x*x + y*y + z*z)
		x, y, z = geocentric(jde - base.LightTime(dist))
		dist = math.Sqrt(x*x + y*y + z*z)

		lon := unit.Angle(math.Atan2(y, x))
		lat := unit.Angle(math.Atan2(z, math.Hypot(x, y)))
		lon, lat = precessFromJ2000(lon, lat, jde)
		lon, lat = apparentOfDate(lon, lat, jde)
		return lon.Deg(), lat.Deg(), dist, nil
	}
}
