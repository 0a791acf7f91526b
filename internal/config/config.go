// internal/config/config.go
//
// Environment configuration for the guessing game and the stats service.
// Values come from the process environment, optionally seeded from a `.env`
// file in the working directory.
//
// Environment variables:
//   GUESS_MIN=0          inclusive lower bound of secrets
//   GUESS_MAX=100        exclusive upper bound of secrets
//   LOG_LEVEL=warn       zerolog level (trace, debug, info, warn, error, ...)
//   LOG_FORMAT=console   "console" or "json"
//   GUESS_DB=            SQLite history path; empty keeps history in memory
//   STATS_ADDR=:5175     listen address of guess-stats

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MaxBound is the largest exclusive upper bound a round may use.
// Guesses are read as unsigned 8-bit integers, so every secret must fit.
const MaxBound = 256

// Config holds all tunables read from the environment.
type Config struct {
	Min       int    `env:"GUESS_MIN" envDefault:"0"`
	Max       int    `env:"GUESS_MAX" envDefault:"100"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	DBPath    string `env:"GUESS_DB"`
	StatsAddr string `env:"STATS_ADDR" envDefault:":5175"`
}

// Load reads an optional .env file, parses the environment into a Config
// and validates it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the secret bounds and the log format.
func (c Config) Validate() error {
	if c.Min < 0 {
		return errors.New("config: GUESS_MIN must not be negative")
	}
	if c.Min >= c.Max {
		return fmt.Errorf("config: GUESS_MIN (%d) must be lower than GUESS_MAX (%d)", c.Min, c.Max)
	}
	if c.Max > MaxBound {
		return fmt.Errorf("config: GUESS_MAX must be at most %d", MaxBound)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
