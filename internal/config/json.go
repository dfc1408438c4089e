package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file format.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Panel struct {
		HTTPAddress    string   `json:"http_address"`
		AllowedOrigins []string `json:"allowed_origins"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
		SessionTTL     Duration `json:"session_ttl"`
		PruneInterval  Duration `json:"prune_interval"`
	} `json:"panel,omitempty"`

	Backend struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Panel: Panel{
			HTTPAddress:    jsonCfg.Panel.HTTPAddress,
			AllowedOrigins: jsonCfg.Panel.AllowedOrigins,
			RateLimit:      jsonCfg.Panel.RateLimit,
			RateBurst:      jsonCfg.Panel.RateBurst,
			SessionTTL:     time.Duration(jsonCfg.Panel.SessionTTL),
			PruneInterval:  time.Duration(jsonCfg.Panel.PruneInterval),
		},
		Backend: Backend{
			HTTPAddress:    jsonCfg.Backend.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
	}, nil
}

// Duration wraps time.Duration so JSON accepts both "30s" strings and
// nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
