package config

import "time"

// Config holds runtime settings for the Shelfkeeper CLI.
//
// An empty RemoteEndpoint keeps the application fully offline: the local
// store still works and no network call is ever attempted.
type Config struct {
	RemoteEndpoint string
	AuthToken      string
	DatabaseDSN    string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	UploadRetries    int
	UploadRetryDelay time.Duration
	RequestTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.RemoteEndpoint = ""
	c.DatabaseDSN = "shelfkeeper.db"
	c.S3Region = "eu-central-1"
	c.UploadRetries = 3
	c.UploadRetryDelay = 2 * time.Second
	c.RequestTimeout = 10 * time.Second
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
