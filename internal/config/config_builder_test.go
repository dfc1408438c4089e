package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one while zero fields leave earlier values in place.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Backend: Backend{HTTPAddress: "http://first", RequestTimeout: time.Second}},
		&StructuredConfig{Backend: Backend{HTTPAddress: "http://second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://second", cfg.Backend.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Backend.RequestTimeout)
}

func TestBuild_DefaultsFirst(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Panel.HTTPAddress)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.HTTPAddress)
	assert.Zero(t, cfg.Backend.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Panel.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.Panel.PruneInterval)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsNotAnError(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BACKEND_ADDRESS=http://from-dotenv:5000\n"), 0o600))
	t.Setenv("BACKEND_ADDRESS", "")
	require.NoError(t, os.Unsetenv("BACKEND_ADDRESS"))

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://from-dotenv:5000", b.configs[0].Backend.HTTPAddress)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BACKEND_ADDRESS=http://from-dotenv:5000\n"), 0o600))
	t.Setenv("BACKEND_ADDRESS", "http://from-env:5000")

	b := newConfigBuilder().withDotEnv(path).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "http://from-env:5000", b.configs[0].Backend.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("PANEL_ADDRESS", "0.0.0.0:9000")
	t.Setenv("BACKEND_REQUEST_TIMEOUT", "45s")

	b := newConfigBuilder().withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "0.0.0.0:9000", b.configs[0].Panel.HTTPAddress)
	assert.Equal(t, 45*time.Second, b.configs[0].Backend.RequestTimeout)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("PANEL_RATE_BURST", "many")

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-b", "http://flag:5000"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://flag:5000", b.configs[0].Backend.HTTPAddress)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Backend.HTTPAddress = "http://json:5000"
	payload.Panel.RateLimit = 2.5
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "http://json:5000", b.configs[1].Backend.HTTPAddress)
	assert.Equal(t, 2.5, b.configs[1].Panel.RateLimit)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.LogLevel = "warn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "warn", b.configs[2].App.LogLevel)
}

// ── GetPanelConfig / GetClientConfig ─────────────────────────────────────────

func TestGetPanelConfig_Defaults(t *testing.T) {
	cfg, err := GetPanelConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Panel.HTTPAddress)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.HTTPAddress)
}

func TestGetPanelConfig_PriorityOrder(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Panel.HTTPAddress = "127.0.0.1:7000"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("PANEL_ADDRESS", "127.0.0.1:6000")
	t.Setenv("BACKEND_ADDRESS", "http://env:5000")

	cfg, err := GetPanelConfig([]string{"-b", "http://flag:5000", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.Panel.HTTPAddress, "json overrides env")
	assert.Equal(t, "http://flag:5000", cfg.Backend.HTTPAddress, "flags override env")
}

func TestGetPanelConfig_InvalidRate(t *testing.T) {
	_, err := GetPanelConfig([]string{"-rate-limit", "-1"})
	assert.ErrorIs(t, err, ErrInvalidPanelConfigs)
}

func TestGetClientConfig_MapsFields(t *testing.T) {
	cfg, err := GetClientConfig([]string{"-b", "http://flag:5000", "-backend-timeout", "10s", "-log-file", "/tmp/panel.log"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:5000", cfg.Backend.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Backend.RequestTimeout)
	assert.Equal(t, "/tmp/panel.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
}
