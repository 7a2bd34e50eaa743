package astrometry

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// placidusIterations bounds the cusp fixed-point iteration. Convergence
// takes under ten rounds anywhere the system is defined.
const placidusIterations = 100

type houseEngine struct {
	logger logger.Logger
}

// NewHouseEngine creates a house engine over the classical cusp algorithms.
func NewHouseEngine(logger logger.Logger) (horoscope.HouseEngine, error) {
	return &houseEngine{logger: logger}, nil
}

func (e *houseEngine) Cusps(jdUT float64, latitude, longitude float64, system horoscope.HouseSystem) (*horoscope.Cusps, error) {
	jde := TT(jdUT)
	_, dEps := nutation.Nutation(jde)
	eps := (nutation.MeanObliquity(jde) + dEps).Rad()

	// Local apparent sidereal time as the right ascension of the meridian.
	// The equation of the equinoxes is already part of sidereal.Apparent.
	ramc := unit.PMod(sidereal.Apparent(jdUT).Rad()+unit.AngleFromDeg(longitude).Rad(), 2*math.Pi)
	phi := unit.AngleFromDeg(latitude).Rad()

	if system.Quadrant() && math.Abs(latitude) >= 90-unit.Angle(eps).Deg() {
		return nil, fmt.Errorf("latitude %.4f: %w", latitude, horoscope.ErrCircumpolar)
	}

	cusps := &horoscope.Cusps{
		Ascendant: unit.Angle(asc1(ramc+math.Pi/2, phi, eps)).Deg(),
		Midheaven: unit.Angle(midheaven(ramc, eps)).Deg(),
	}

	switch system {
	case horoscope.Placidus:
		if err := placidus(cusps, ramc, phi, eps); err != nil {
			return nil, err
		}
	case horoscope.Regiomontanus:
		regiomontanus(cusps, ramc, phi, eps)
	case horoscope.Porphyry:
		porphyry(cusps)
	case horoscope.Equal:
		equalHouses(cusps)
	case horoscope.WholeSign:
		wholeSign(cusps)
	default:
		return nil, fmt.Errorf("unsupported house system: %s", system)
	}
	return cusps, nil
}

// asc1 returns the ecliptic longitude, in radians, rising across the house
// circle whose pole height is f and whose equator crossing has right
// ascension ra. With ra = RAMC+90 and f the geographic latitude this is the
// ascendant itself.
func asc1(ra, f, eps float64) float64 {
	sr, cr := math.Sincos(ra)
	lambda := math.Atan2(sr, cr*math.Cos(eps)-math.Tan(f)*math.Sin(eps))
	return unit.PMod(lambda, 2*math.Pi)
}

// midheaven returns the ecliptic longitude, in radians, on the upper
// meridian at the given RAMC.
func midheaven(ramc, eps float64) float64 {
	sr, cr := math.Sincos(ramc)
	return unit.PMod(math.Atan2(sr, cr*math.Cos(eps)), 2*math.Pi)
}

// raToEcl returns the ecliptic longitude, in radians, of the point of the
// ecliptic with the given right ascension.
func raToEcl(ra, eps float64) float64 {
	sr, cr := math.Sincos(ra)
	return unit.PMod(math.Atan2(sr, cr*math.Cos(eps)), 2*math.Pi)
}

// placidus fills the intermediate cusps by proportional division of the
// diurnal and nocturnal semi-arcs, iterating each cusp to its fixed point.
func placidus(c *horoscope.Cusps, ramc, phi, eps float64) error {
	// Fractions of the cusp's own semi-arc, measured from the meridian for
	// the diurnal cusps and from the horizon for the nocturnal ones.
	targets := []struct {
		house    int
		fraction float64
		diurnal  bool
	}{
		{11, 1.0 / 3.0, true},
		{12, 2.0 / 3.0, true},
		{2, 1.0 / 3.0, false},
		{3, 2.0 / 3.0, false},
	}

	results := map[int]float64{}
	for _, target := range targets {
		lambda, err := placidusCusp(ramc, phi, eps, target.fraction, target.diurnal)
		if err != nil {
			return err
		}
		results[target.house] = lambda
	}

	fillQuadrant(c,
		unit.Angle(results[11]).Deg(),
		unit.Angle(results[12]).Deg(),
		unit.Angle(results[2]).Deg(),
		unit.Angle(results[3]).Deg())
	return nil
}

func placidusCusp(ramc, phi, eps, fraction float64, diurnal bool) (float64, error) {
	// Seed with the equator solution, where every semi-arc is 90 degrees
	// and the cusps divide right ascension evenly.
	seed := fraction * math.Pi / 2
	if !diurnal {
		seed += math.Pi / 2
	}
	lambda := raToEcl(ramc+seed, eps)

	for i := 0; i < placidusIterations; i++ {
		delta := math.Asin(math.Sin(lambda) * math.Sin(eps))
		cosDSA := -math.Tan(phi) * math.Tan(delta)
		if cosDSA <= -1 || cosDSA >= 1 {
			return 0, fmt.Errorf("cusp declination %.4f never crosses the horizon: %w",
				unit.Angle(delta).Deg(), horoscope.ErrCircumpolar)
		}
		dsa := math.Acos(cosDSA)

		// Hour angle of the cusp, negative east of the meridian.
		var hourAngle float64
		if diurnal {
			hourAngle = -fraction * dsa
		} else {
			hourAngle = -dsa - fraction*(math.Pi-dsa)
		}
		next := raToEcl(ramc-hourAngle, eps)

		if math.Abs(wrapPi(next-lambda)) < 1e-10 {
			return next, nil
		}
		lambda = next
	}
	return 0, fmt.Errorf("cusp iteration did not converge: %w", horoscope.ErrCircumpolar)
}

// regiomontanus fills the intermediate cusps from house circles through the
// equal thirty degree divisions of the celestial equator.
func regiomontanus(c *horoscope.Cusps, ramc, phi, eps float64) {
	pole1 := math.Atan(math.Tan(phi) * math.Sin(math.Pi/6))
	pole2 := math.Atan(math.Tan(phi) * math.Sin(math.Pi/3))

	fillQuadrant(c,
		unit.Angle(asc1(ramc+math.Pi/6, pole1, eps)).Deg(),
		unit.Angle(asc1(ramc+math.Pi/3, pole2, eps)).Deg(),
		unit.Angle(asc1(ramc+2*math.Pi/3, pole2, eps)).Deg(),
		unit.Angle(asc1(ramc+5*math.Pi/6, pole1, eps)).Deg())
}

// porphyry trisects the ecliptic arcs between the angles. Defined at every
// latitude, which makes it the fallback for circumpolar charts.
func porphyry(c *horoscope.Cusps) {
	diurnal := ephemeris.Normalize(c.Ascendant - c.Midheaven)
	nocturnal := 180 - diurnal

	fillQuadrant(c,
		ephemeris.Normalize(c.Midheaven+diurnal/3),
		ephemeris.Normalize(c.Midheaven+2*diurnal/3),
		ephemeris.Normalize(c.Ascendant+nocturnal/3),
		ephemeris.Normalize(c.Ascendant+2*nocturnal/3))
}

// equalHouses spaces every cusp thirty degrees from the ascendant.
func equalHouses(c *horoscope.Cusps) {
	for i := 0; i < 12; i++ {
		c.Houses[i] = ephemeris.Normalize(c.Ascendant + float64(i)*30)
	}
}

// wholeSign makes each house one zodiac sign, starting with the rising sign.
func wholeSign(c *horoscope.Cusps) {
	start := math.Floor(c.Ascendant/30) * 30
	for i := 0; i < 12; i++ {
		c.Houses[i] = ephemeris.Normalize(start + float64(i)*30)
	}
}

// fillQuadrant completes the wheel from the four computed intermediate
// cusps, mirroring them into the western hemisphere.
func fillQuadrant(c *horoscope.Cusps, c11, c12, c2, c3 float64) {
	c.Houses[0] = c.Ascendant
	c.Houses[1] = c2
	c.Houses[2] = c3
	c.Houses[9] = c.Midheaven
	c.Houses[10] = c11
	c.Houses[11] = c12

	c.Houses[3] = ephemeris.Normalize(c.Houses[9] + 180)
	c.Houses[4] = ephemeris.Normalize(c.Houses[10] + 180)
	c.Houses[5] = ephemeris.Normalize(c.Houses[11] + 180)
	c.Houses[6] = ephemeris.Normalize(c.Houses[0] + 180)
	c.Houses[7] = ephemeris.Normalize(c.Houses[1] + 180)
	c.Houses[8] = ephemeris.Normalize(c.Houses[2] + 180)
}

// wrapPi folds an angle in radians into (-pi, pi].
func wrapPi(a float64) float64 {
	return unit.PMod(a+math.Pi, 2*math.Pi) - math.Pi
}
