package config

import (
	"flag"
	"os"
	"time"

	"github.com/vortextv/vortexcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   API base URL (default from earlier stages)
//	-t int      auth timeout in seconds
//	-i int      token refresh interval in seconds
//	-d          enable debug logging
//	-db string  local database path
//
// The function filters os.Args to only the flags it owns, so the JSON stage
// (-c/-config) and test flags do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-i", "-d", "-db"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	authTimeout := fs.Int("t", int(cfg.AuthTimeout.Seconds()), "auth timeout (in seconds)")
	refreshInterval := fs.Int("i", int(cfg.TokenRefreshInterval.Seconds()), "token refresh interval (in seconds)")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "local database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthTimeout = time.Duration(*authTimeout) * time.Second
	cfg.TokenRefreshInterval = time.Duration(*refreshInterval) * time.Second
}
