// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration of both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds process-wide settings such as logging.
	App App `envPrefix:"APP_"`

	// Panel holds the web panel listener and its request guards.
	Panel Panel `envPrefix:"PANEL_"`

	// Backend holds the optimization backend location.
	Backend Backend `envPrefix:"BACKEND_"`

	// JSONFilePath is the optional path of a JSON config file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Panel holds the web panel settings.
type Panel struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: PANEL_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedOrigins enables CORS for the listed origins so the fragments
	// can be requested from another dashboard host. Empty disables CORS.
	// Env: PANEL_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// RateLimit is the sustained number of /ui requests per second accepted
	// from one client address. Zero disables limiting.
	// Env: PANEL_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size that goes with RateLimit.
	// Env: PANEL_RATE_BURST
	RateBurst int `env:"RATE_BURST"`

	// SessionTTL is how long an idle panel session keeps its submission
	// token before it is pruned.
	// Env: PANEL_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// PruneInterval is how often idle sessions are pruned.
	// Env: PANEL_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// Backend holds the location of the optimization backend.
type Backend struct {
	// HTTPAddress is the backend base URL; a missing scheme means http.
	// Env: BACKEND_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single backend call. Zero means no
	// client-side timeout.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Panel: Panel{
			HTTPAddress:   "localhost:8080",
			RateBurst:     1,
			SessionTTL:    30 * time.Minute,
			PruneInterval: 5 * time.Minute,
		},
		Backend: Backend{
			HTTPAddress: "http://localhost:5000",
		},
	}
}

// GetPanelConfig loads and validates the web panel configuration. args are
// the command-line arguments without the program name.
func GetPanelConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
