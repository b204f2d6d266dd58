package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the puzzle farm's process surface: where the seven bucket
// files go, how many puzzles each bucket needs, how many workers run, the
// seed their private random streams derive from, how often a worker merges
// its batch, and the optional status-server address.
type Config struct {
	OutputDir string
	Target    int
	Workers   int
	Seed      int64
	SaveEvery int
	HTTPAddr  string
}

// Load loads configuration from environment variables. Flags in cmd/farm
// override these values when explicitly set.
func Load() (*Config, error) {
	target, err := intEnv("FARM_TARGET", 50)
	if err != nil {
		return nil, err
	}
	workers, err := intEnv("FARM_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	saveEvery, err := intEnv("FARM_SAVE_EVERY", 1000)
	if err != nil {
		return nil, err
	}
	seed, err := int64Env("FARM_SEED", 1)
	if err != nil {
		return nil, err
	}

	return &Config{
		OutputDir: getEnv("FARM_OUTPUT_DIR", "./puzzles"),
		Target:    target,
		Workers:   workers,
		Seed:      seed,
		SaveEvery: saveEvery,
		HTTPAddr:  getEnv("FARM_HTTP_ADDR", ""),
	}, nil
}

// Validate checks the config is usable before any workers start.
func (c *Config) Validate() error {
	if c.Target <= 0 {
		return fmt.Errorf("config: target must be positive, got %d", c.Target)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: workers must be positive, got %d", c.Workers)
	}
	if c.SaveEvery <= 0 {
		return fmt.Errorf("config: save-every must be positive, got %d", c.SaveEvery)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output directory is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, val)
	}
	return n, nil
}

func int64Env(key string, fallback int64) (int64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer, got %q", key, val)
	}
	return n, nil
}
