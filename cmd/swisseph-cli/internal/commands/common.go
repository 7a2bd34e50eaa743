package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ahwethan/swiss-ephemeris-api/internal/app"
	"github.com/ahwethan/swiss-ephemeris-api/internal/domain/horoscope"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/astrometry"
	"github.com/ahwethan/swiss-ephemeris-api/internal/infrastructure/geocoding"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/config"
	"github.com/ahwethan/swiss-ephemeris-api/internal/pkg/logger"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		// warning keeps computation chatter off stdout, which carries JSON
		LogLevel: "warning",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// ephemerisSettingsFromEnv builds engine settings from the SE_EPHE_PATH
// environment variable. An unset variable selects the built-in series.
func ephemerisSettingsFromEnv() *config.EphemerisSettings {
	return &config.EphemerisSettings{
		DataPath:    os.Getenv(config.EnvEphemerisPath),
		HouseSystem: string(horoscope.DefaultHouseSystem),
	}
}

// defaultGeocoderSettings mirrors the service defaults. CLI runs resolve
// locations without a persistent cache.
func defaultGeocoderSettings() *config.GeocoderSettings {
	return &config.GeocoderSettings{
		BaseURL:           "https://nominatim.openstreetmap.org",
		UserAgent:         "horary_astrology_app",
		TimeoutSeconds:    10,
		FallbackName:      "Istanbul, Turkey",
		FallbackLatitude:  41.0082,
		FallbackLongitude: 28.9784,
	}
}

// buildComputeService assembles the chart computation service from the
// environment. Engines honor SE_EPHE_PATH and geocoding runs uncached.
func buildComputeService(loggerInstance logger.Logger) (horoscope.ComputeService, error) {
	positionProvider, err := astrometry.NewPositionProvider(ephemerisSettingsFromEnv(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create position provider: %w", err)
	}

	houseEngine, err := astrometry.NewHouseEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create house engine: %w", err)
	}

	riseSetEngine, err := astrometry.NewRiseSetEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create rise/set engine: %w", err)
	}

	geocoder, err := geocoding.NewNominatimGeocoder(defaultGeocoderSettings(), nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoder: %w", err)
	}

	return app.NewHoroscopeComputeService(positionProvider, houseEngine, riseSetEngine, geocoder, loggerInstance)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
