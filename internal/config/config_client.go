package config

import (
	"fmt"
)

// ClientConfig is the view of [StructuredConfig] used by the terminal client.
type ClientConfig struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the client log destination.
	LogFile string
	// Backend is the optimization backend location.
	Backend Backend
}

// GetClientConfig builds the merged configuration and maps the fields the
// terminal client needs.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		LogFile:  cfg.App.LogFile,
		Backend:  cfg.Backend,
	}

	return clientCfg, clientCfg.validate()
}
