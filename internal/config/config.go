// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// blended management tooling. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix  — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env        — direct environment variable name for scalar fields.
//   - envDefault — value used when the variable is unset.
type StructuredConfig struct {
	// App holds application-level settings such as version and log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the bundle inventory database and the
	// optional inventory file used to seed it.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the management
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the outbound bundle list client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Server holds network and timeout settings for the management API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Adapter holds settings of the bundle list client.
type Adapter struct {
	// BundlesEndpoint is the absolute URL answering GET with a JSON array
	// of bundles.
	// Env: ADAPTER_BUNDLES_ENDPOINT
	BundlesEndpoint string `env:"BUNDLES_ENDPOINT" envDefault:"http://localhost:8080/osgiManagement/bundles"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Storage groups the configuration for the bundle inventory.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds file-system settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" URLs use
	// PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" envDefault:"blended.db"`
}

// Files holds file-system settings.
type Files struct {
	// InventoryFile is an optional JSON or YAML list of bundles loaded into
	// the database when the management server starts.
	// Env: STORAGE_FILES_INVENTORY_FILE
	InventoryFile string `env:"INVENTORY_FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (with defaults)
//  2. Command-line flags registered on fs with [RegisterFlags]
//  3. JSON file (path resolved from sources 1 and 2)
//
// fs may be nil, in which case the flag layer is empty.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
