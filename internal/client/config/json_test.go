package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides defaults with file values", func(t *testing.T) {
		path := writeConfigFile(t, `{
			"server_url": "https://apps.example.org",
			"api_base_url": "/api",
			"database_path": "/var/lib/shelfhub/local.db",
			"request_timeout": "12s"
		}`)
		os.Args = []string{"cli", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://apps.example.org", cfg.ServerURL)
		assert.Equal(t, "/api", cfg.APIBaseURL)
		assert.Equal(t, "/var/lib/shelfhub/local.db", cfg.DatabasePath)
		assert.Equal(t, 12*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeConfigFile(t, `{"server_url": "http://10.0.0.5:8100"}`)
		os.Args = []string{"cli", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://10.0.0.5:8100", cfg.ServerURL)
		assert.Equal(t, "shelfhub.db", cfg.DatabasePath)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"cli"}

		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		parseJson(cfg)

		assert.Equal(t, want, *cfg)
	})

	t.Run("unreadable file panics", func(t *testing.T) {
		os.Args = []string{"cli", "-c", filepath.Join(t.TempDir(), "missing.json")}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("malformed json panics", func(t *testing.T) {
		path := writeConfigFile(t, `{"server_url": `)
		os.Args = []string{"cli", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseJson(cfg) })
	})
}
