package config

// PostgresDbType represents a PostgreSQL database backend
const PostgresDbType = "postgres"

// SqliteDbType represents a SQLite database backend
const SqliteDbType = "sqlite"

// EnvConfigPath names the environment variable holding the config file location
const EnvConfigPath = "CONFIG_PATH"

// EnvEphemerisPath names the environment variable holding the ephemeris data directory
const EnvEphemerisPath = "SE_EPHE_PATH"
