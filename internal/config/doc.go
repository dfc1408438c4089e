// Package config loads, merges and validates the panel configuration.
//
// Sources, applied in order (a later source overrides earlier non-zero
// fields):
//  1. Built-in defaults
//  2. A .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags
//  5. A JSON config file named by CONFIG, -c or -config
//
// [GetPanelConfig] returns the configuration of the web panel and
// [GetClientConfig] the narrower view used by the terminal client.
package config
