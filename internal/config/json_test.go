package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJsonOverlays(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_dsn": "json.db",
		"inactivity_timeout": "45m",
		"http_retry_attempts": 5,
		"http_retry_delay": "2s"
	}`)
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "json.db", cfg.DatabaseDSN)
	require.Equal(t, 45*time.Minute, cfg.InactivityTimeout)
	require.Equal(t, 5, cfg.HTTPRetryAttempts)
	require.Equal(t, 2*time.Second, cfg.HTTPRetryDelay)
	// Untouched fields keep their defaults.
	require.Equal(t, "shoplens-local-device", cfg.SessionSecret)
}

func TestParseJsonPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"database_dsn": "only.db"}`)
	withArgs(t, "-config", path)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	require.Equal(t, "only.db", cfg.DatabaseDSN)
	require.Equal(t, 30*time.Minute, cfg.InactivityTimeout)
}

func TestParseJsonNoFileIsNoop(t *testing.T) {
	withArgs(t)

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)
	require.Equal(t, "shoplens.db", cfg.DatabaseDSN)
}

func TestParseJsonBrokenFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	require.Panics(t, func() { parseJson(&cfg) })
}
