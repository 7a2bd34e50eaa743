package astrometry

import (
	"fmt"

	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/ephemeris"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// speedStep is the half step, in days, of the central difference used for
// daily motion. Small enough that even the Moon moves well under a degree.
const speedStep = 0.005

// sourceFunc computes apparent geocentric ecliptic coordinates of date for
// one body at a Julian Day in terrestrial time. Longitude and latitude are
// degrees, distance follows the BodyPosition convention.
type sourceFunc func(jde float64) (lon, lat, dist float64, err error)

// positionProvider implements ephemeris.PositionProvider around a table of
// per-body sources.
type positionProvider struct {
	logger  logger.Logger
	full    bool
	sources map[ephemeris.Body]sourceFunc
}

// NewPositionProvider creates the position provider for the given settings.
// When the data path holds loadable VSOP87 files those back the planets;
// otherwise, or for any planet whose file is missing, the provider degrades
// to the built-in series.
func NewPositionProvider(settings *config.EphemerisSettings, logger logger.Logger) (ephemeris.PositionProvider, error) {
	if settings == nil {
		return nil, fmt.Errorf("ephemeris settings must not be nil")
	}

	builtin := builtinSources()
	if settings.DataPath == "" {
		logger.Info("No ephemeris data path configured, using built-in planetary series")
		return &positionProvider{logger: logger, full: false, sources: builtin}, nil
	}

	sources, loaded, err := vsop87Sources(settings.DataPath, builtin, logger)
	if err != nil {
		logger.Warn(fmt.Sprintf("VSOP87 data unusable at %s, using built-in planetary series: %v", settings.DataPath, err))
		return &positionProvider{logger: logger, full: false, sources: builtin}, nil
	}

	logger.Info(fmt.Sprintf("Loaded VSOP87 data for %d planets from %s", loaded, settings.DataPath))
	return &positionProvider{logger: logger, full: true, sources: sources}, nil
}

func (p *positionProvider) FullPrecision() bool {
	return p.full
}

func (p *positionProvider) Position(jdUT float64, body ephemeris.Body) (ephemeris.BodyPosition, error) {
	src, ok := p.sources[body]
	if !ok {
		return ephemeris.BodyPosition{}, fmt.Errorf("no position source for body %s", body)
	}

	jde := TT(jdUT)
	lon, lat, dist, err := src(jde)
	if err != nil {
		return ephemeris.BodyPosition{}, fmt.Errorf("failed to compute position of %s: %w", body, err)
	}

	speed, err := p.dailyMotion(src, jde)
	if err != nil {
		return ephemeris.BodyPosition{}, fmt.Errorf("failed to compute daily motion of %s: %w", body, err)
	}

	return ephemeris.BodyPosition{
		Body:       body,
		Longitude:  ephemeris.Normalize(lon),
		Latitude:   lat,
		Distance:   dist,
		Speed:      speed,
		Retrograde: speed < 0,
	}, nil
}

func (p *positionProvider) Positions(jdUT float64) ([]ephemeris.BodyPosition, error) {
	positions := make([]ephemeris.BodyPosition, 0, len(ephemeris.ChartBodies))
	for _, body := range ephemeris.ChartBodies {
		pos, err := p.Position(jdUT, body)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// dailyMotion estimates the instantaneous motion in longitude by a central
// difference across the moment.
func (p *positionProvider) dailyMotion(src sourceFunc, jde float64) (float64, error) {
	before, _, _, err := src(jde - speedStep)
	if err != nil {
		return 0, err
	}
	after, _, _, err := src(jde + speedStep)
	if err != nil {
		return 0, err
	}
	return ephemeris.SignedDelta(before, after) / (2 * speedStep), nil
}
