package config

import "time"

// Config holds runtime settings for the Inkwell CLI.
//
// Fields:
//   - BackendBaseURL: base URL of the blog backend, e.g. "http://localhost:5000".
//     All REST paths (/api/blogs, /api/auth/..., /api/upload, ...) are resolved
//     against it.
//   - RequestTimeout: per-request timeout for plain REST calls. The AI
//     generation stream is exempt; it stays open until the terminal sentinel.
//   - CredentialsPath: sqlite file holding the persisted token/user pair.
type Config struct {
	BackendBaseURL  string
	RequestTimeout  time.Duration
	CredentialsPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = "http://localhost:5000"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsPath = "inkwell.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
