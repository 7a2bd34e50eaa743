package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/geo"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// signExitIterations bounds the Newton search for the next lunar ingress.
// The Moon crosses a sign boundary within 2.7 days and its motion is smooth,
// so the search settles in a handful of rounds.
const signExitIterations = 30

// signExitTolerance is the convergence threshold of the ingress search in
// days, well below the resolution of the planetary theories.
const signExitTolerance = 1e-7

// aspectMultiples are the relative longitudes at which a classical aspect
// between two bodies is exact.
var aspectMultiples = [...]float64{0, 60, 90, 120, 180, 240, 270, 300}

// horoscopeComputeService implements the horoscope.ComputeService interface for casting charts
type horoscopeComputeService struct {
	positionProvider ephemeris.PositionProvider
	houseEngine      horoscope.HouseEngine
	riseSetEngine    horoscope.RiseSetEngine
	geocoder         geo.Geocoder
	logger           logger.Logger
}

// NewHoroscopeComputeService creates a new horoscopeComputeService instance
func NewHoroscopeComputeService(
	positionProvider ephemeris.PositionProvider,
	houseEngine horoscope.HouseEngine,
	riseSetEngine horoscope.RiseSetEngine,
	geocoder geo.Geocoder,
	logger logger.Logger,
) (horoscope.ComputeService, error) {
	return &horoscopeComputeService{
		positionProvider: positionProvider,
		houseEngine:      houseEngine,
		riseSetEngine:    riseSetEngine,
		geocoder:         geocoder,
		logger:           logger,
	}, nil
}

// Compute casts a full horary chart: it resolves the observation site,
// fixes the chart instant, computes positions and houses, and derives the
// judgement layers (aspects, dignities, lunar condition, planetary rulers,
// Part of Fortune).
func (s *horoscopeComputeService) Compute(ctx context.Context, input *horoscope.ChartInput) (*horoscope.Chart, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	requested, err := horoscope.ParseHouseSystem(input.HouseSystem)
	if err != nil {
		return nil, err
	}

	location, err := s.resolveLocation(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	moment, err := horoscope.CivilMoment(input.Date, input.Time, input.Timezone)
	if err != nil {
		return nil, err
	}

	jd := ephemeris.JulianDay(moment)

	positions, err := s.positionProvider.Positions(jd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute positions: %w", err)
	}

	sun, err := positionOf(positions, ephemeris.Sun)
	if err != nil {
		return nil, err
	}
	moon, err := positionOf(positions, ephemeris.Moon)
	if err != nil {
		return nil, err
	}

	cusps, used, err := s.castHouses(jd, location, requested)
	if err != nil {
		return nil, err
	}

	moonInfo, err := s.moonCondition(moment, positions)
	if err != nil {
		return nil, fmt.Errorf("failed to judge the lunar condition: %w", err)
	}

	dayRuler, hourRuler, hourIndex := s.planetaryRulers(moment, location)

	altitude, err := s.riseSetEngine.SolarAltitude(moment, location.Latitude, location.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to compute solar altitude: %w", err)
	}
	dayChart := altitude > 0

	fortuneLon := horoscope.PartOfFortune(cusps.Ascendant, sun.Longitude, moon.Longitude, dayChart)

	chart := &horoscope.Chart{
		Moment:    moment,
		UTC:       moment.UTC(),
		JulianDay: jd,
		Timezone:  moment.Location().String(),
		Location:  *location,
		Question:  input.Question,

		HouseSystemRequested: requested,
		HouseSystemUsed:      used,
		FullPrecision:        s.positionProvider.FullPrecision(),

		Bodies: placements(positions, cusps),
		Angles: horoscope.Angles{
			Ascendant:  cusps.Ascendant,
			Midheaven:  cusps.Midheaven,
			Descendant: cusps.Descendant(),
			ImumCoeli:  cusps.ImumCoeli(),
		},
		Cusps:   cusps.Houses,
		Aspects: horoscope.DetectAspects(positions),
		Moon:    moonInfo,
		Rulers: horoscope.Rulers{
			Day:       dayRuler,
			Hour:      hourRuler,
			HourIndex: hourIndex,
			Ascendant: horoscope.RulerOf(ephemeris.SignFromLongitude(cusps.Ascendant)),
		},
		Fortune: horoscope.FortunePoint{
			Longitude: fortuneLon,
			Sign:      ephemeris.SignFromLongitude(fortuneLon),
			House:     cusps.HouseOf(fortuneLon),
			DayChart:  dayChart,
		},
	}

	s.logger.Info("Computed ", used, " chart for ", moment.Format(time.RFC3339),
		" at lat ", location.Latitude, " lon ", location.Longitude)

	return chart, nil
}

// Positions returns raw geocentric positions for a moment, without any
// location-dependent chart work.
func (s *horoscopeComputeService) Positions(ctx context.Context, input *horoscope.PositionsInput) (*horoscope.PositionSet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	moment, err := horoscope.CivilMoment(input.Date, input.Time, input.Timezone)
	if err != nil {
		return nil, err
	}

	jd := ephemeris.JulianDay(moment)
	positions, err := s.positionProvider.Positions(jd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute positions: %w", err)
	}

	return &horoscope.PositionSet{
		Moment:        moment,
		UTC:           moment.UTC(),
		JulianDay:     jd,
		Timezone:      moment.Location().String(),
		FullPrecision: s.positionProvider.FullPrecision(),
		Positions:     positions,
	}, nil
}

// resolveLocation turns the location fields of a chart input into an
// observation site. Explicit coordinates win; anything else goes through
// the geocoder, which falls back to the configured default on its own.
func (s *horoscopeComputeService) resolveLocation(ctx context.Context, input *horoscope.ChartInput) (*geo.Location, error) {
	if input.HasCoordinates() {
		return &geo.Location{
			Name:      input.LocationName,
			Latitude:  *input.Latitude,
			Longitude: *input.Longitude,
			Source:    geo.SourceRequest,
		}, nil
	}

	return s.geocoder.Resolve(ctx, input.LocationName)
}

// castHouses computes cusps in the requested system and falls back to
// porphyry when a quadrant system is undefined at the latitude.
func (s *horoscopeComputeService) castHouses(jd float64, location *geo.Location, requested horoscope.HouseSystem) (*horoscope.Cusps, horoscope.HouseSystem, error) {
	cusps, err := s.houseEngine.Cusps(jd, location.Latitude, location.Longitude, requested)
	if err == nil {
		return cusps, requested, nil
	}
	if !errors.Is(err, horoscope.ErrCircumpolar) {
		return nil, "", fmt.Errorf("failed to compute houses: %w", err)
	}

	s.logger.Warn("Falling back to porphyry houses: ", err)
	cusps, err = s.houseEngine.Cusps(jd, location.Latitude, location.Longitude, horoscope.Porphyry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to compute fallback houses: %w", err)
	}
	return cusps, horoscope.Porphyry, nil
}

// moonCondition summarizes the lunar phase and runs the void-of-course
// judgement: the Moon is void when no classical aspect to a traditional
// planet perfects before the next sign ingress.
func (s *horoscopeComputeService) moonCondition(moment time.Time, positions []ephemeris.BodyPosition) (horoscope.MoonInfo, error) {
	moon, err := positionOf(positions, ephemeris.Moon)
	if err != nil {
		return horoscope.MoonInfo{}, err
	}
	sun, err := positionOf(positions, ephemeris.Sun)
	if err != nil {
		return horoscope.MoonInfo{}, err
	}

	angle := horoscope.PhaseAngle(moon.Longitude, sun.Longitude)
	info := horoscope.MoonInfo{
		Sign:         moon.Sign(),
		Phase:        horoscope.PhaseFromAngle(angle),
		PhaseAngle:   angle,
		Illumination: horoscope.IlluminatedFraction(angle),
	}

	exitJD, err := s.moonSignExit(ephemeris.JulianDay(moment), moon)
	if err != nil {
		return horoscope.MoonInfo{}, err
	}

	exitPositions, err := s.positionProvider.Positions(exitJD)
	if err != nil {
		return horoscope.MoonInfo{}, err
	}
	moonAtExit, err := positionOf(exitPositions, ephemeris.Moon)
	if err != nil {
		return horoscope.MoonInfo{}, err
	}

	// The Moon outruns every traditional planet and never retrogrades, so
	// the relative longitude to each planet grows monotonically. An aspect
	// perfects inside the window exactly when the swept arc covers one of
	// the aspect multiples.
	info.VoidOfCourse = true
	for _, body := range ephemeris.ClassicalBodies {
		if body == ephemeris.Moon {
			continue
		}

		now, err := positionOf(positions, body)
		if err != nil {
			return horoscope.MoonInfo{}, err
		}
		atExit, err := positionOf(exitPositions, body)
		if err != nil {
			return horoscope.MoonInfo{}, err
		}

		from := ephemeris.Normalize(moon.Longitude - now.Longitude)
		to := ephemeris.Normalize(moonAtExit.Longitude - atExit.Longitude)
		swept := ephemeris.Normalize(to - from)

		for _, multiple := range aspectMultiples {
			arc := ephemeris.Normalize(multiple - from)
			if arc > 0 && arc <= swept {
				info.VoidOfCourse = false
				break
			}
		}
		if !info.VoidOfCourse {
			break
		}
	}

	if info.VoidOfCourse {
		exit := ephemeris.TimeFromJulianDay(exitJD).In(moment.Location())
		info.VoidUntil = &exit
	}

	return info, nil
}

// moonSignExit returns the Julian Day of the next lunar sign ingress after
// jd. Newton steps on the daily motion converge quickly because the Moon is
// never retrograde and moves almost uniformly across a single sign.
func (s *horoscopeComputeService) moonSignExit(jd float64, moon ephemeris.BodyPosition) (float64, error) {
	boundary := ephemeris.Normalize(moon.Longitude - ephemeris.DegreeInSign(moon.Longitude) + 30)

	pos := moon
	exitJD := jd
	for i := 0; i < signExitIterations; i++ {
		remaining := ephemeris.Normalize(boundary - pos.Longitude)
		if remaining > 180 {
			// Stepped past the boundary, walk back.
			remaining -= 360
		}

		step := remaining / pos.Speed
		exitJD += step
		if math.Abs(step) < signExitTolerance {
			return exitJD, nil
		}

		var err error
		pos, err = s.positionProvider.Position(exitJD, ephemeris.Moon)
		if err != nil {
			return 0, err
		}
	}

	return 0, fmt.Errorf("lunar ingress search did not converge from JD %f", jd)
}

// planetaryRulers determines the day and hour rulers at the chart moment.
// When the Sun does not rise or set on one of the days involved the hour
// table is undefined: the chart then reports only the day ruler, anchored
// on the civil weekday.
func (s *horoscopeComputeService) planetaryRulers(moment time.Time, location *geo.Location) (day, hour ephemeris.Body, hourIndex int) {
	dayRuler, hours, err := s.planetaryDay(moment, location)
	if err != nil {
		s.logger.Warn("Planetary hours unavailable: ", err)
		return horoscope.DayRuler(moment.Weekday()), "", 0
	}

	current, err := horoscope.HourAt(hours, moment)
	if err != nil {
		s.logger.Warn("Planetary hours unavailable: ", err)
		return dayRuler, "", 0
	}

	return dayRuler, current.Ruler, current.Index
}

// planetaryDay locates the sunrise that opened the planetary day holding
// the moment and builds the table of its twenty-four hours.
func (s *horoscopeComputeService) planetaryDay(moment time.Time, location *geo.Location) (ephemeris.Body, []horoscope.PlanetaryHour, error) {
	rise, set, err := s.riseSetEngine.SunTimes(moment, location.Latitude, location.Longitude)
	if err != nil {
		return "", nil, err
	}

	if moment.Before(rise) {
		// Before today's sunrise the chart still belongs to the planetary
		// day that opened yesterday.
		nextRise := rise
		rise, set, err = s.riseSetEngine.SunTimes(moment.AddDate(0, 0, -1), location.Latitude, location.Longitude)
		if err != nil {
			return "", nil, err
		}

		ruler := horoscope.DayRuler(rise.Weekday())
		hours, err := horoscope.PlanetaryHours(ruler, rise, set, nextRise)
		return ruler, hours, err
	}

	nextRise, _, err := s.riseSetEngine.SunTimes(moment.AddDate(0, 0, 1), location.Latitude, location.Longitude)
	if err != nil {
		return "", nil, err
	}

	ruler := horoscope.DayRuler(rise.Weekday())
	hours, err := horoscope.PlanetaryHours(ruler, rise, set, nextRise)
	return ruler, hours, err
}

// placements produces the chart placements for a computed position set.
func placements(positions []ephemeris.BodyPosition, cusps *horoscope.Cusps) []horoscope.BodyPlacement {
	bodies := make([]horoscope.BodyPlacement, len(positions))
	for i, pos := range positions {
		sign := pos.Sign()
		bodies[i] = horoscope.BodyPlacement{
			BodyPosition: pos,
			Sign:         sign,
			SignDegree:   pos.SignDegree(),
			House:        cusps.HouseOf(pos.Longitude),
			Dignity:      horoscope.DignityOf(pos.Body, sign),
		}
	}
	return bodies
}

// positionOf finds the position of a single body in a computed set.
func positionOf(positions []ephemeris.BodyPosition, body ephemeris.Body) (ephemeris.BodyPosition, error) {
	for _, pos := range positions {
		if pos.Body == body {
			return pos, nil
		}
	}
	return ephemeris.BodyPosition{}, fmt.Errorf("no position computed for %s", body)
}
