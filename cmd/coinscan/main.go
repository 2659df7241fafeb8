// Package main implements the coinscan CLI, which finds cryptocurrency
// addresses in CSV, TSV and plain-text exports.
//
// Usage:
//
//	# Scan files and print JSON
//	coinscan scan exports/*.csv
//
//	# Check addresses by hand
//	coinscan validate BTC 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
//
//	# Configure via environment
//	COINSCAN_EXTRACTION_WORKERS=8 coinscan scan dump.tsv
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fyrsmithlabs/coinscan/internal/config"
	"github.com/fyrsmithlabs/coinscan/internal/logging"
	"github.com/fyrsmithlabs/coinscan/internal/registry"
	"github.com/fyrsmithlabs/coinscan/internal/telemetry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configPath is the YAML configuration file; empty uses the default path.
	configPath string
	logLevel   string
	logFormat  string

	// version information (set via ldflags during build)
	version = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coinscan",
	Short: "Find cryptocurrency addresses in tabular exports",
	Long: `coinscan scans CSV, TSV and plain-text files for cryptocurrency addresses,
scores each match, verifies checksums where the currency has one and flags
repeated occurrences.

Supported currencies: BTC, ETH, XMR, TRX, USDT, DOGE, XRP, ADA, SHIB, LTC,
XLM and SOL, plus any custom currencies from the configuration.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/coinscan/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: json or console")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(currenciesCmd)
}

// env is what every subcommand needs after configuration is loaded.
type env struct {
	cfg    *config.Config
	logger *logging.Logger
}

// setup loads configuration, applies flag overrides, builds the logger and
// installs the tracer provider so log lines carry trace and span IDs.
func setup(ctx context.Context) (*env, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}

	tel, err := telemetry.New(ctx, &cfg.Telemetry, telemetry.WithVersion(version))
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	if tel.Exporting() {
		logger.Debug(ctx, "exporting traces",
			zap.String("endpoint", cfg.Telemetry.Endpoint),
			zap.String("protocol", cfg.Telemetry.Protocol),
		)
	}

	cleanup := func() {
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return &env{cfg: cfg, logger: logger}, cleanup, nil
}

func newLogger(lc config.LoggingConfig) (*logging.Logger, error) {
	cfg, err := logging.FromSettings(lc)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(cfg)
}

// buildRegistry returns the built-in currencies plus custom currencies from
// the configuration, the configured TOML file and extraFile, in that order.
func buildRegistry(cfg *config.Config, extraFile string) (*registry.Registry, error) {
	reg := registry.NewDefault()

	customs := make([]registry.CustomCurrency, 0, len(cfg.Extraction.CustomCurrencies))
	for _, cc := range cfg.Extraction.CustomCurrencies {
		customs = append(customs, registry.CustomCurrency{
			Name:         cc.Name,
			Symbol:       cc.Symbol,
			Pattern:      cc.Pattern,
			ReplaceAlias: cc.ReplaceAlias,
		})
	}

	for _, path := range []string{cfg.Extraction.CustomCurrenciesFile, extraFile} {
		if path == "" {
			continue
		}
		fromFile, err := registry.LoadCustomFile(path)
		if err != nil {
			return nil, err
		}
		customs = append(customs, fromFile...)
	}

	if err := reg.RegisterCustom(customs...); err != nil {
		return nil, fmt.Errorf("custom currencies: %w", err)
	}
	return reg, nil
}
