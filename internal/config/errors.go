package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidPanelConfigs indicates an unusable panel listener or guard
	// setting (empty address, negative rate, zero session lifetime).
	ErrInvalidPanelConfigs = errors.New("invalid panel configuration")
	// ErrInvalidBackendConfigs indicates a missing backend address or a
	// negative request timeout.
	ErrInvalidBackendConfigs = errors.New("invalid backend configuration")
)
