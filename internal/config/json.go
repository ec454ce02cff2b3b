package config

import (
	"encoding/json"
	"os"

	"github.com/shoplens/shoplens/internal/flagx"
	"github.com/shoplens/shoplens/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30m"
// or as integer nanoseconds. Zero-valued fields leave the current Config
// value untouched, so a partial file only overrides what it names.
type JsonConfig struct {
	DatabaseDSN       string         `json:"database_dsn"`
	PostgresDSN       string         `json:"postgres_dsn"`
	SessionSecret     string         `json:"session_secret"`
	InactivityTimeout timex.Duration `json:"inactivity_timeout"`

	PlaceholderAPIAddr  string         `json:"placeholder_api_addr"`
	ExchangeRateAPIAddr string         `json:"exchange_rate_api_addr"`
	HTTPTimeout         timex.Duration `json:"http_timeout"`
	HTTPRetryAttempts   int            `json:"http_retry_attempts"`
	HTTPRetryDelay      timex.Duration `json:"http_retry_delay"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// -c or -config. When no file is given the function returns quietly; read
// or unmarshal errors panic, since a named-but-broken config file should
// stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.PostgresDSN != "" {
		cfg.PostgresDSN = jc.PostgresDSN
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
	if jc.InactivityTimeout.Duration > 0 {
		cfg.InactivityTimeout = jc.InactivityTimeout.Duration
	}
	if jc.PlaceholderAPIAddr != "" {
		cfg.PlaceholderAPIAddr = jc.PlaceholderAPIAddr
	}
	if jc.ExchangeRateAPIAddr != "" {
		cfg.ExchangeRateAPIAddr = jc.ExchangeRateAPIAddr
	}
	if jc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.HTTPRetryAttempts > 0 {
		cfg.HTTPRetryAttempts = jc.HTTPRetryAttempts
	}
	if jc.HTTPRetryDelay.Duration > 0 {
		cfg.HTTPRetryDelay = jc.HTTPRetryDelay.Duration
	}
}
