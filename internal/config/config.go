// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the dev
// config server. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and the location of the served UI.
	Server Server `envPrefix:"SERVER_"`

	// Backend holds the address of the query backend the UI configuration
	// is fetched from.
	Backend Backend `envPrefix:"BACKEND_"`

	// Cache holds the freshness window of fetched backend configuration.
	Cache Cache `envPrefix:"CACHE_"`

	// Overrides holds the paths of the local developer override files.
	Overrides Overrides `envPrefix:"OVERRIDES_"`

	// Log holds output settings of the application logger.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds settings of the inbound HTTP host.
type Server struct {
	// HTTPAddress is the TCP address the dev server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// StaticDir is the directory static UI assets are served from.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// IndexFile is the path of the HTML template the configuration is
	// injected into. Relative paths are resolved against StaticDir.
	// Env: SERVER_INDEX_FILE
	IndexFile string `env:"INDEX_FILE"`
}

// Backend holds the location of the running query backend.
type Backend struct {
	// Address is the base URL of the backend (e.g. "http://localhost:16686").
	// A bare "host:port" is accepted and assumed to be plain HTTP.
	// Env: BACKEND_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every single backend call. A call not answered
	// in time is cancelled and treated as failed.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds settings of the backend config cache.
type Cache struct {
	// TTL is how long a fetch result, successful or not, is reused.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Overrides holds the paths of the optional local override files.
type Overrides struct {
	// FullOverridePath is the script file whose contents replace the UI
	// configuration entirely.
	// Env: OVERRIDES_FULL_OVERRIDE_PATH
	FullOverridePath string `env:"FULL_OVERRIDE_PATH"`

	// PatchPath is the JSON file merged over the backend UI configuration.
	// Env: OVERRIDES_PATCH_PATH
	PatchPath string `env:"PATCH_PATH"`

	// DisableWatch turns off reloading browsers when an override file
	// changes.
	// Env: OVERRIDES_DISABLE_WATCH
	DisableWatch bool `env:"DISABLE_WATCH"`
}

// Log holds logger output settings.
type Log struct {
	// Pretty switches from JSON lines to human-readable console output.
	// Env: LOG_PRETTY
	Pretty bool `env:"PRETTY"`
}

// Default values applied before any other source.
const (
	DefaultHTTPAddress      = "localhost:5173"
	DefaultStaticDir        = "."
	DefaultIndexFile        = "index.html"
	DefaultBackendAddress   = "http://localhost:16686"
	DefaultRequestTimeout   = time.Second
	DefaultCacheTTL         = 30 * time.Second
	DefaultFullOverridePath = "jaeger-ui.config.js"
	DefaultPatchPath        = "jaeger-ui.config.json"
)

// Defaults returns the configuration used when no other source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
			StaticDir:   DefaultStaticDir,
			IndexFile:   DefaultIndexFile,
		},
		Backend: Backend{
			Address:        DefaultBackendAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Cache: Cache{
			TTL: DefaultCacheTTL,
		},
		Overrides: Overrides{
			FullOverridePath: DefaultFullOverridePath,
			PatchPath:        DefaultPatchPath,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. args are the command-line arguments without the program name.
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load or the merged config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
