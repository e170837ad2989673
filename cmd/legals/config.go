package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"

	mg "chess-movegen/goosemg"
)

// Config drives one run of the tool. Environment variables set the defaults;
// command-line flags win over them.
type Config struct {
	FEN      string `env:"LEGALS_FEN"`
	LogLevel string `env:"LEGALS_LOG_LEVEL" envDefault:"info"`
	Expand   bool   `env:"LEGALS_EXPAND"`
	Verify   bool   `env:"LEGALS_VERIFY"`
}

// parseEnv loads configuration from environment variables.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func loadConfig(args []string, stderr io.Writer) (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.FEN == "" {
		cfg.FEN = mg.FENStartPos
	}

	fs := flag.NewFlagSet("legals", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.FEN, "fen", cfg.FEN, "FEN string (defaults to initial position)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn, error or fatal")
	fs.BoolVar(&cfg.Expand, "expand", cfg.Expand, "Print the expanded UCI moves")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Compare against notnil/chess legal moves")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, nil
}
