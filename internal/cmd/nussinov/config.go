// Package nussinov implements the nussinov command: fold a given or random
// RNA sequence and optionally compare the result with an exact solver.
package nussinov

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/rnafold/nussinov"
)

// Config holds command configuration. Environment variables provide the
// defaults; flags override them.
type Config struct {
	Sequence   string        `env:"RNAFOLD_SEQUENCE"`
	Length     int           `env:"RNAFOLD_LENGTH"     envDefault:"8"`
	Seed       int64         `env:"RNAFOLD_SEED"       envDefault:"0"`
	Iterations int           `env:"RNAFOLD_ITERATIONS" envDefault:"5"`
	Timeout    time.Duration `env:"RNAFOLD_TIMEOUT"    envDefault:"10s"`
	Workers    int           `env:"RNAFOLD_WORKERS"    envDefault:"1"`
	Strict     bool          `env:"RNAFOLD_STRICT"`
	Compare    bool          `env:"RNAFOLD_COMPARE"    envDefault:"true"`
	JSON       bool          `env:"RNAFOLD_JSON"`
	Verbose    bool          `env:"RNAFOLD_VERBOSE"`
}

// ParseConfig parses env and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Sequence, "seq", cfg.Sequence, "RNA sequence to fold (default: random)")
	fs.IntVar(&cfg.Length, "n", cfg.Length, "length of the random sequence")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fixed default)")
	fs.IntVar(&cfg.Iterations, "iter", cfg.Iterations, "solver attempts in compare mode")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout per solver attempt")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "goroutines for the DP fill")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject symbols outside A, U, G, C")
	fs.BoolVar(&cfg.Compare, "compare", cfg.Compare, "compare against the exhaustive solver")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "emit JSON instead of text")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate rejects values the library would panic or fail on later.
func (c Config) validate() error {
	switch {
	case c.Sequence == "" && c.Length < 0:
		return fmt.Errorf("length must be non-negative, got %d", c.Length)
	case c.Sequence == "" && c.Length > nussinov.DefaultMaxLength:
		return fmt.Errorf("length must be at most %d, got %d", nussinov.DefaultMaxLength, c.Length)
	case c.Iterations < 1:
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	case c.Timeout < 0:
		return fmt.Errorf("timeout must be non-negative, got %s", c.Timeout)
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}

	return nil
}
