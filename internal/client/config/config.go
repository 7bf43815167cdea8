package config

import "time"

// Config holds runtime settings for the JobEase CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - APIEnabled: when false, every outbound HTTP call fails immediately.
//     This is a deployment/testing toggle, not a resilience mechanism.
//   - RequestTimeout: per-request timeout for backend calls.
//   - StoragePath: path of the local SQLite file holding persisted
//     session state (token, user, theme).
//   - Environment: reported in telemetry payloads ("development"/"production").
type Config struct {
	APIBaseURL     string
	APIEnabled     bool
	RequestTimeout time.Duration
	StoragePath    string
	Environment    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.APIEnabled = true
	c.RequestTimeout = 10 * time.Second
	c.StoragePath = "jobease.db"
	c.Environment = "development"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
