//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "rest-app.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

func TestInitializeRestConfig(t *testing.T) {
	configContent := `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
ephemeris:
  data_path: "./sweph"
  house_system: placidus
geocoder:
  base_url: "https://nominatim.openstreetmap.org"
  user_agent: "horary_astrology_app"
  timeout_seconds: 10
  fallback_name: "Istanbul, Turkey"
  fallback_latitude: 41.0082
  fallback_longitude: 28.9784
  cache_enabled: true
`
	path := writeTestConfig(t, configContent)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, "./sweph", cfg.Ephemeris.DataPath)
	require.Equal(t, "placidus", cfg.Ephemeris.HouseSystem)
	require.Equal(t, 41.0082, cfg.Geocoder.FallbackLatitude)
}

func TestInitializeRestConfig_AppliesDefaults(t *testing.T) {
	// A minimal file relies on defaults for everything else
	path := writeTestConfig(t, "port: \"9090\"\n")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	require.Equal(t, SqliteDbType, cfg.Database.Type)
	require.Equal(t, "placidus", cfg.Ephemeris.HouseSystem)
	require.Equal(t, "horary_astrology_app", cfg.Geocoder.UserAgent)
	require.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
}

func TestInitializeRestConfig_EphemerisPathEnvOverride(t *testing.T) {
	path := writeTestConfig(t, "ephemeris:\n  data_path: \"./sweph\"\n")

	t.Setenv(EnvEphemerisPath, "/app/sweph")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	require.Equal(t, "/app/sweph", cfg.Ephemeris.DataPath)
}

func TestInitializeRestConfig_MissingFile(t *testing.T) {
	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestInitializeRestConfig_InvalidHouseSystem(t *testing.T) {
	path := writeTestConfig(t, "ephemeris:\n  house_system: campanus\n")

	_, err := InitializeRestConfig(path)
	require.Error(t, err)
}
