package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Timestamp source selection values for Config.Source.
const (
	SourceAuto    = "auto"
	SourceCounter = "counter"
	SourceWall    = "wall"
)

// Config is the configuration for the benchmark runner.
type Config struct {
	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Iterations is the number of events each worker records.
	Iterations int `yaml:"iterations"`

	// Workers is the number of concurrent producers sharing one
	// profiler.
	Workers int `yaml:"workers"`

	// WorkSize is the number of spin-loop units per synthetic event.
	WorkSize int `yaml:"work_size"`

	// Source selects the timestamp source: auto, counter or wall.
	// Auto uses the hardware counter when it is available and
	// invariant, falling back to the wall clock.
	Source string `yaml:"source"`

	// Percentiles are the fractions reported by the run summary.
	Percentiles []float64 `yaml:"percentiles"`

	// NoColor disables colored report output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Iterations:  100_000,
		Workers:     4,
		WorkSize:    10_000,
		Source:      SourceAuto,
		Percentiles: []float64{0.50, 0.90, 0.99, 0.999, 0.9999},
	}
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive")
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	if c.WorkSize <= 0 {
		return fmt.Errorf("work_size must be positive")
	}

	switch c.Source {
	case SourceAuto, SourceCounter, SourceWall:
	default:
		return fmt.Errorf(
			"source must be one of %s, %s or %s, got %q",
			SourceAuto, SourceCounter, SourceWall, c.Source,
		)
	}

	for _, p := range c.Percentiles {
		if p < 0 || p > 1 {
			return fmt.Errorf(
				"percentiles must be fractions in [0, 1], got %v", p,
			)
		}
	}

	return nil
}
