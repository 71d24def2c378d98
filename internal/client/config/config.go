package config

import "time"

// Config holds runtime settings for the Shelfhub CLI.
//
// Fields:
//   - ServerURL: origin of the backend (scheme://host[:port]); the API base
//     is resolved against it at startup.
//   - APIBaseURL: explicit API base. Absolute URLs are used as-is; values
//     starting with "/" are joined to ServerURL; empty falls back to the
//     default API path under ServerURL.
//   - DatabasePath: sqlite file holding durable client state (token,
//     locale, theme).
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerURL      string
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8100"
	c.APIBaseURL = ""
	c.DatabasePath = "shelfhub.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
