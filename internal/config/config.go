// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "path/filepath"

// StructuredConfig is the top-level configuration container for the
// memory-circle application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, CLI-provided
// overrides, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence layer: the
	// SQLite database and the data directory that also hosts legacy
	// flat-storage files.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and overrides.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Written into exported backup documents.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is an optional path the CLI logger appends to. When empty,
	// logs go to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local persistence layer.
type Storage struct {
	// DataDir is the directory holding the database file and the legacy
	// flat-storage files consumed by the one-time migration.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path. Defaults to
	// <DataDir>/memory-circle.db when unset.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetConfig loads, merges, and validates the application configuration from
// all available sources in the following priority order (first non-zero value
// wins per field):
//  1. Environment variables
//  2. CLI-provided overrides (cobra flags)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Unset fields receive defaults afterwards. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withOverrides(overrides).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = "."
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(cfg.Storage.DataDir, "memory-circle.db")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
}
