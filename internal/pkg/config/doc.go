// Package config provides functionality for loading and managing application configuration.
//
// Settings come from a YAML file with defaults applied underneath and
// environment overrides (SE_EPHE_PATH, PORT) on top. Every section validates
// itself so misconfiguration surfaces at startup, not mid-request.
package config
