// Package config provides configuration loading for coinscan.
//
// Configuration comes from an optional YAML file overridden by COINSCAN_*
// environment variables, on top of the defaults returned by Default.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/coinscan/internal/filter"
	"github.com/fyrsmithlabs/coinscan/internal/scoring"
	"github.com/fyrsmithlabs/coinscan/internal/telemetry"
)

// maxWorkers bounds extraction.workers.
const maxWorkers = 1024

// Config holds the complete coinscan configuration.
type Config struct {
	Extraction ExtractionConfig `koanf:"extraction"`
	Filter     filter.Config    `koanf:"filter"`
	Scoring    scoring.Weights  `koanf:"scoring"`
	Logging    LoggingConfig    `koanf:"logging"`
	Metrics    MetricsConfig    `koanf:"metrics"`
	Telemetry  telemetry.Config `koanf:"telemetry"`
}

// ExtractionConfig holds extraction settings.
type ExtractionConfig struct {
	ValidateChecksums bool `koanf:"validate_checksums"`
	// Workers is the number of cells scanned in parallel; 0 means one per CPU.
	Workers int `koanf:"workers"`

	// CustomCurrenciesFile names a TOML file of [[currency]] tables.
	CustomCurrenciesFile string                 `koanf:"custom_currencies_file"`
	CustomCurrencies     []CustomCurrencyConfig `koanf:"custom_currencies"`
}

// CustomCurrencyConfig declares a user-defined currency inline.
type CustomCurrencyConfig struct {
	Name         string `koanf:"name"`
	Symbol       string `koanf:"symbol"`
	Pattern      string `koanf:"pattern"`
	ReplaceAlias bool   `koanf:"replace_alias"`
}

// LoggingConfig holds the user-facing subset of logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File receives logs instead of stderr when set.
	File         string   `koanf:"file"`
	Sampling     bool     `koanf:"sampling"`
	SamplingTick Duration `koanf:"sampling_tick"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	// Textfile is written in Prometheus text format after each run, for
	// node_exporter's textfile collector. Empty disables export.
	Textfile string `koanf:"textfile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			ValidateChecksums: true,
		},
		Filter:  *filter.DefaultConfig(),
		Scoring: scoring.DefaultWeights(),
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			Sampling:     true,
			SamplingTick: Duration(defaultSamplingTick),
		},
		Telemetry: *telemetry.NewDefaultConfig(),
	}
}

var validLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Validate validates the configuration.
//
// Returns an error if:
//   - extraction.workers is negative or above 1024
//   - a custom currency lacks a name, symbol or pattern
//   - the filter settings or scoring weights are invalid
//   - logging.level or logging.format is unknown
//   - telemetry export is enabled without a usable endpoint
func (c *Config) Validate() error {
	if c.Extraction.Workers < 0 || c.Extraction.Workers > maxWorkers {
		return fmt.Errorf("extraction.workers must be between 0 and %d, got %d", maxWorkers, c.Extraction.Workers)
	}
	for i, cc := range c.Extraction.CustomCurrencies {
		if strings.TrimSpace(cc.Name) == "" || strings.TrimSpace(cc.Symbol) == "" || cc.Pattern == "" {
			return fmt.Errorf("extraction.custom_currencies[%d]: name, symbol and pattern are required", i)
		}
	}

	if err := c.Filter.Validate(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", c.Logging.Format)
	}
	if c.Logging.Sampling && c.Logging.SamplingTick <= 0 {
		return errors.New("logging.sampling_tick must be positive when sampling is enabled")
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}
