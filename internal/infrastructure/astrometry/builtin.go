package astrometry

import (
	"math"

	"github.com/soniakeys/meeus/v3/apparent"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
)

// keplerElements holds mean orbital elements in the J2000 ecliptic frame
// together with their centennial rates, from the JPL approximate-position
// tables valid for 1800-2050.
type keplerElements struct {
	a, aDot       float64 // semi-major axis, AU
	e, eDot       float64 // eccentricity
	incl, inclDot float64 // inclination, degrees
	lon, lonDot   float64 // mean longitude, degrees
	peri, periDot float64 // longitude of perihelion, degrees
	node, nodeDot float64 // longitude of ascending node, degrees
}

// earthElements are the elements of the Earth-Moon barycenter. The offset to
// the Earth itself is below the precision of this fallback theory.
var earthElements = keplerElements{
	a: 1.00000261, aDot: 0.00000562,
	e: 0.01671123, eDot: -0.00004392,
	incl: -0.00001531, inclDot: -0.01294668,
	lon: 100.46457166, lonDot: 35999.37244981,
	peri: 102.93768193, periDot: 0.32327364,
	node: 0, nodeDot: 0,
}

var planetElements = map[ephemeris.Body]keplerElements{
	ephemeris.Mercury: {
		a: 0.38709927, aDot: 0.00000037,
		e: 0.20563593, eDot: 0.00001906,
		incl: 7.00497902, inclDot: -0.00594749,
		lon: 252.25032350, lonDot: 149472.67411175,
		peri: 77.45779628, periDot: 0.16047689,
		node: 48.33076593, nodeDot: -0.12534081,
	},
	ephemeris.Venus: {
		a: 0.72333566, aDot: 0.00000390,
		e: 0.00677672, eDot: -0.00004107,
		incl: 3.39467605, inclDot: -0.00078890,
		lon: 181.97909950, lonDot: 58517.81538729,
		peri: 131.60246718, periDot: 0.00268329,
		node: 76.67984255, nodeDot: -0.27769418,
	},
	ephemeris.Mars: {
		a: 1.52371034, aDot: 0.00001847,
		e: 0.09339410, eDot: 0.00007882,
		incl: 1.84969142, inclDot: -0.00813131,
		lon: -4.55343205, lonDot: 19140.30268499,
		peri: -23.94362959, periDot: 0.44441088,
		node: 49.55953891, nodeDot: -0.29257343,
	},
	ephemeris.Jupiter: {
		a: 5.20288700, aDot: -0.00011607,
		e: 0.04838624, eDot: -0.00013253,
		incl: 1.30439695, inclDot: -0.00183714,
		lon: 34.39644051, lonDot: 3034.74612775,
		peri: 14.72847983, periDot: 0.21252668,
		node: 100.47390909, nodeDot: 0.20469106,
	},
	ephemeris.Saturn: {
		a: 9.53667594, aDot: -0.00125060,
		e: 0.05386179, eDot: -0.00050991,
		incl: 2.48599187, inclDot: 0.00193609,
		lon: 49.95424423, lonDot: 1222.49362201,
		peri: 92.59887831, periDot: -0.41897216,
		node: 113.66242448, nodeDot: -0.28867794,
	},
	ephemeris.Uranus: {
		a: 19.18916464, aDot: -0.00196176,
		e: 0.04725744, eDot: -0.00004397,
		incl: 0.77263783, inclDot: -0.00242939,
		lon: 313.23810451, lonDot: 428.48202785,
		peri: 170.95427630, periDot: 0.40805281,
		node: 74.01692503, nodeDot: 0.04240589,
	},
	ephemeris.Neptune: {
		a: 30.06992276, aDot: 0.00026291,
		e: 0.00859048, eDot: 0.00005105,
		incl: 1.77004347, inclDot: 0.00035372,
		lon: -55.12002969, lonDot: 218.45945325,
		peri: 44.96476227, periDot: -0.32241464,
		node: 131.78422574, nodeDot: -0.00508664,
	},
	ephemeris.Pluto: {
		a: 39.48211675, aDot: -0.00031596,
		e: 0.24882730, eDot: 0.00005170,
		incl: 17.14001206, inclDot: 0.00004818,
		lon: 238.92903833, lonDot: 145.20780515,
		peri: 224.06891629, periDot: -0.04062942,
		node: 110.30393684, nodeDot: -0.01183482,
	},
}

// builtinSources returns the full source table of the built-in theory. The
// Sun, Moon and node sources here also serve the VSOP87 provider.
func builtinSources() map[ephemeris.Body]sourceFunc {
	sources := map[ephemeris.Body]sourceFunc{
		ephemeris.Sun:       builtinSun,
		ephemeris.Moon:      moonSource,
		ephemeris.NorthNode: nodeSource,
	}
	for body, el := range planetElements {
		sources[body] = keplerPlanetSource(el)
	}
	return sources
}

func builtinSun(jde float64) (float64, float64, float64, error) {
	T := base.J2000Century(jde)
	return solar.ApparentLongitude(T).Deg(), 0, solar.Radius(T), nil
}

func moonSource(jde float64) (float64, float64, float64, error) {
	lon, lat, dist := moonposition.Position(jde)
	dPsi, _ := nutation.Nutation(jde)
	return (lon + dPsi).Mod1().Deg(), lat.Deg(), dist, nil
}

func nodeSource(jde float64) (float64, float64, float64, error) {
	return moonposition.Node(jde).Mod1().Deg(), 0, 0, nil
}

// keplerPlanetSource builds a source around one set of mean elements. The
// geometric position is antedated by one light-time step, then aberration
// and nutation turn it into an apparent position of date.
func keplerPlanetSource(el keplerElements) sourceFunc {
	return func(jde float64) (float64, float64, float64, error) {
		ex, ey, ez := earthElements.heliocentric(jde)
		px, py, pz := el.heliocentric(jde)
		gx, gy, gz := px-ex, py-ey, pz-ez
		dist := math.Sqrt(gx*gx + gy*gy + gz*gz)

		px, py, pz = el.heliocentric(jde - base.LightTime(dist))
		gx, gy, gz = px-ex, py-ey, pz-ez
		dist = math.Sqrt(gx*gx + gy*gy + gz*gz)

		lon := unit.Angle(math.Atan2(gy, gx))
		lat := unit.Angle(math.Atan2(gz, math.Hypot(gx, gy)))
		lon, lat = precessFromJ2000(lon, lat, jde)
		lon, lat = apparentOfDate(lon, lat, jde)
		return lon.Deg(), lat.Deg(), dist, nil
	}
}

// heliocentric returns J2000 ecliptic rectangular coordinates in AU.
func (el keplerElements) heliocentric(jde float64) (x, y, z float64) {
	T := (jde - base.J2000) / base.JulianCentury
	a := el.a + el.aDot*T
	e := el.e + el.eDot*T
	incl := unit.AngleFromDeg(el.incl + el.inclDot*T).Rad()
	meanLon := el.lon + el.lonDot*T
	peri := el.peri + el.periDot*T
	node := el.node + el.nodeDot*T

	m := unit.PMod(unit.AngleFromDeg(meanLon-peri).Rad()+math.Pi, 2*math.Pi) - math.Pi
	ea := solveKepler(m, e)
	xp := a * (math.Cos(ea) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ea)

	sw, cw := math.Sincos(unit.AngleFromDeg(peri - node).Rad())
	so, co := math.Sincos(unit.AngleFromDeg(node).Rad())
	si, ci := math.Sincos(incl)

	x = (cw*co-sw*so*ci)*xp + (-sw*co-cw*so*ci)*yp
	y = (cw*so+sw*co*ci)*xp + (-sw*so+cw*co*ci)*yp
	z = sw*si*xp + cw*si*yp
	return x, y, z
}

// solveKepler solves M = E - e sin E for the eccentric anomaly by Newton
// iteration. All planetary eccentricities here keep the iteration stable.
func solveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)
	for i := 0; i < 20; i++ {
		d := (m - (ea - e*math.Sin(ea))) / (1 - e*math.Cos(ea))
		ea += d
		if math.Abs(d) < 1e-12 {
			break
		}
	}
	return ea
}

// apparentOfDate applies ecliptic aberration and nutation in longitude to
// geometric coordinates referred to the mean equinox of date.
func apparentOfDate(lon, lat unit.Angle, jde float64) (unit.Angle, unit.Angle) {
	dLon, dLat := apparent.EclipticAberration(lon, lat, jde)
	dPsi, _ := nutation.Nutation(jde)
	return (lon + dLon + dPsi).Mod1(), lat + dLat
}

// precessFromJ2000 rotates ecliptic coordinates from the J2000.0 frame to the
// mean ecliptic and equinox of date.
func precessFromJ2000(lon, lat unit.Angle, jde float64) (unit.Angle, unit.Angle) {
	t := (jde - base.J2000) / base.JulianCentury
	eta := unit.AngleFromSec(base.Horner(t, 0, 47.0029, -0.03302, 0.000060)).Rad()
	fixedPole := unit.AngleFromDeg(174.876384).Rad() +
		unit.AngleFromSec(base.Horner(t, 0, -869.8089, 0.03536)).Rad()
	p := unit.AngleFromSec(base.Horner(t, 0, 5029.0966, 1.11113, -0.000006)).Rad()

	se, ce := math.Sincos(eta)
	sb, cb := lat.Sincos()
	sd, cd := math.Sincos(fixedPole - lon.Rad())
	A := ce*cb*sd - se*sb
	B := cb * cd
	C := ce*sb + se*cb*sd

	newLon := unit.Angle(p + fixedPole - math.Atan2(A, B)).Mod1()
	return newLon, unit.Angle(math.Asin(C))
}
