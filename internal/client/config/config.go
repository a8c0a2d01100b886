// Package config handles configuration for the blog CLI, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the blog CLI.
//
// Fields:
//   - BaseURL: base address of the backend REST API, including the /api
//     prefix.
//   - RequestTimeout: upper bound on every outbound request.
//   - TokenFile: path of the persisted-token file; empty means the default
//     location under the user's config directory.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	TokenFile      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.TokenFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
