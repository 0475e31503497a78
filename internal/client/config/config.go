// Package config handles configuration for the capture client, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the testly capture client.
//
// Fields:
//   - ProcessorBaseURL: root of the processing endpoint; never hardcoded at
//     call sites.
//   - PhotosDir: app-private directory captured images are copied into.
//   - SubmitTimeout: bound on one whole submission attempt.
//   - SeedFolders: folders present after first launch.
type Config struct {
	ProcessorBaseURL string
	PhotosDir        string
	SubmitTimeout    time.Duration
	SeedFolders      []string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ProcessorBaseURL = "http://127.0.0.1:5000"
	c.PhotosDir = "photos"
	c.SubmitTimeout = 60 * time.Second
	c.SeedFolders = []string{"Matematik", "Fizik", "Kimya"}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
