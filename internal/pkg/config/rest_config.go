package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RestConfig aggregates all settings required by the REST application
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Ephemeris EphemerisSettings `mapstructure:"ephemeris"`
	Geocoder  GeocoderSettings  `mapstructure:"geocoder"`

	// CORSAllowOrigins lists the origins the API accepts cross-site
	// requests from.
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
}

// InitializeRestConfig reads the YAML config file at configPath, applies
// defaults and environment overrides and returns the validated configuration.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	setDefaults(v)

	// SE_EPHE_PATH and PORT are part of the container contract
	if err := v.BindEnv("ephemeris.data_path", EnvEphemerisPath); err != nil {
		return nil, fmt.Errorf("failed to bind ephemeris env var: %w", err)
	}
	if err := v.BindEnv("port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port env var: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the aggregated configuration section by section
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Ephemeris.Validate(); err != nil {
		return err
	}
	if err := c.Geocoder.Validate(); err != nil {
		return err
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("cors_allow_origins", []string{"*"})

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "swisseph.db")

	v.SetDefault("ephemeris.data_path", "./sweph")
	v.SetDefault("ephemeris.house_system", "placidus")

	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.user_agent", "horary_astrology_app")
	v.SetDefault("geocoder.timeout_seconds", 10)
	v.SetDefault("geocoder.fallback_name", "Istanbul, Turkey")
	v.SetDefault("geocoder.fallback_latitude", 41.0082)
	v.SetDefault("geocoder.fallback_longitude", 28.9784)
	v.SetDefault("geocoder.cache_enabled", true)
	v.SetDefault("geocoder.cache_max_age_days", 0)
}
