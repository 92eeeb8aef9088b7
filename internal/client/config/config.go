// Package config holds runtime settings for the VortexTV CLI.
//
// Values are layered: per-environment defaults, then environment variables,
// then an optional JSON config file, then command-line flags. Later sources
// take precedence over earlier ones. An explicit VORTEXTV_API_URL therefore
// always beats the environment table.
package config

import (
	"os"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

type Config struct {
	// Environment is the deployment profile the defaults were taken from.
	Environment string

	// APIBaseURL is the backend REST root, e.g. http://localhost:5000/api.
	APIBaseURL string `env:"VORTEXTV_API_URL"`

	// AuthTimeout bounds auth-critical calls client-side. The HTTP
	// transport timeout is derived from it (one third), so this is the
	// outer, not the transport, limit.
	AuthTimeout time.Duration `env:"VORTEXTV_AUTH_TIMEOUT"`

	// TokenRefreshInterval is how often the credential watcher re-reads
	// the persisted token to catch out-of-band changes.
	TokenRefreshInterval time.Duration `env:"VORTEXTV_TOKEN_REFRESH_INTERVAL"`

	// CodeGenTimeout is the hard client-side limit on access-code
	// generation, independent of the transport timeout.
	CodeGenTimeout time.Duration `env:"VORTEXTV_CODEGEN_TIMEOUT"`

	// Debug enables request/response traffic logging.
	Debug bool `env:"VORTEXTV_DEBUG"`

	// DatabasePath is the local sqlite store location.
	DatabasePath string `env:"VORTEXTV_DB_PATH"`
}

// LoadDefaults populates c with the defaults for the named environment.
// Unknown names fall back to development.
func (c *Config) LoadDefaults(environment string) {
	switch environment {
	case EnvProduction:
		c.Environment = EnvProduction
		c.APIBaseURL = "https://api.vortextv.com/api"
		c.AuthTimeout = time.Hour
		c.TokenRefreshInterval = 15 * time.Minute
		c.Debug = false
	case EnvStaging:
		c.Environment = EnvStaging
		c.APIBaseURL = "https://staging-api.vortextv.com/api"
		c.AuthTimeout = 30 * time.Minute
		c.TokenRefreshInterval = 5 * time.Minute
		c.Debug = true
	default:
		c.Environment = EnvDevelopment
		c.APIBaseURL = "http://localhost:5000/api"
		c.AuthTimeout = 30 * time.Minute
		c.TokenRefreshInterval = 5 * time.Minute
		c.Debug = true
	}
	c.CodeGenTimeout = 10 * time.Second
	c.DatabasePath = "vortextv.db"
}

// LoadConfig constructs a Config: environment defaults, then environment
// variables, then JSON (if present), then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults(os.Getenv("VORTEXTV_ENV"))
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
