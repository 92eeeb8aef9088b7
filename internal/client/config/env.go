package config

import (
	"log"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with VORTEXTV_* environment variables. Duration
// variables accept Go duration strings ("30m", "10s").
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		log.Printf("ignoring invalid environment configuration: %v", err)
	}
}
