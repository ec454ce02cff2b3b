// Package config holds runtime settings for the ShopLens client and the
// layered loading logic: defaults, then a JSON file, then command-line
// flags, with later sources taking precedence.
package config

import "time"

// Config holds runtime settings for the ShopLens client.
//
// DatabaseDSN names the local device database. PostgresDSN is optional:
// when set, the credential store moves to Postgres (server deployment)
// while session state stays on the device.
type Config struct {
	DatabaseDSN       string
	PostgresDSN       string
	SessionSecret     string
	InactivityTimeout time.Duration

	PlaceholderAPIAddr  string
	ExchangeRateAPIAddr string
	HTTPTimeout         time.Duration
	HTTPRetryAttempts   int
	HTTPRetryDelay      time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "shoplens.db"
	// Devices sign their own session artifacts; the secret only needs to be
	// stable per installation, not shared.
	c.SessionSecret = "shoplens-local-device"
	c.InactivityTimeout = 30 * time.Minute

	c.PlaceholderAPIAddr = "https://jsonplaceholder.typicode.com"
	c.ExchangeRateAPIAddr = "https://api.exchangerate-api.com/v4"
	c.HTTPTimeout = 10 * time.Second
	c.HTTPRetryAttempts = 3
	c.HTTPRetryDelay = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
