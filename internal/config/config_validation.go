// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged config before the panel starts.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Panel.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidPanelConfigs)
	}
	if cfg.Panel.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidPanelConfigs)
	}
	if cfg.Panel.RateLimit > 0 && cfg.Panel.RateBurst < 1 {
		return fmt.Errorf("%w: rate burst must be at least 1", ErrInvalidPanelConfigs)
	}
	if cfg.Panel.SessionTTL <= 0 || cfg.Panel.PruneInterval <= 0 {
		return fmt.Errorf("%w: session ttl and prune interval must be positive", ErrInvalidPanelConfigs)
	}

	return validateBackend(cfg.Backend.HTTPAddress, cfg.Backend.RequestTimeout.Seconds())
}

func (cfg *ClientConfig) validate() error {
	return validateBackend(cfg.Backend.HTTPAddress, cfg.Backend.RequestTimeout.Seconds())
}

func validateBackend(address string, timeoutSeconds float64) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidBackendConfigs)
	}
	if timeoutSeconds < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidBackendConfigs)
	}
	return nil
}
