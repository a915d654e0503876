package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr          string        `env:"SERVER_ADDR" envDefault:":8080"`
	SelfURL       string        `env:"SELF_URL" envDefault:"http://localhost:8080"`
	CatalogPath   string        `env:"CATALOG_PATH"`
	RemoteTimeout time.Duration `env:"REMOTE_TIMEOUT" envDefault:"5s"`
	DebugFlag     bool          `env:"DEBUG" envDefault:"false"`
}

// ReadConfig reads the environment first and then the command line flags.
// Flags default to the environment values, so an explicit flag always wins.
func ReadConfig(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("bookstore", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Server address")
	fs.StringVar(&cfg.SelfURL, "self", cfg.SelfURL, "base URL the remote routes call back into")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "path to a JSON catalog, embedded seed when empty")
	fs.DurationVar(&cfg.RemoteTimeout, "remote-timeout", cfg.RemoteTimeout, "timeout for remote route calls")
	fs.BoolVar(&cfg.DebugFlag, "debug", cfg.DebugFlag, "enable debug logger level")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}
