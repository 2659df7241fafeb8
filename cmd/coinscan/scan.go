package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fyrsmithlabs/coinscan/internal/enrichment"
	"github.com/fyrsmithlabs/coinscan/internal/extraction"
	"github.com/fyrsmithlabs/coinscan/internal/filter"
	"github.com/fyrsmithlabs/coinscan/internal/scoring"
	"github.com/fyrsmithlabs/coinscan/internal/tabular"
	"github.com/fyrsmithlabs/coinscan/internal/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scanNoValidate bool
	scanWorkers    int
	scanFormat     string
	scanOutput     string
	scanLabels     string
	scanCustom     string
	scanMetricsOut string
)

var scanCmd = &cobra.Command{
	Use:   "scan FILE...",
	Short: "Extract cryptocurrency addresses from files",
	Long: `Scan reads each file, extracts every address it recognises and writes one
record per occurrence.

Files ending in .csv and .tsv are read cell by cell; anything else is read
one line per cell. Records are written as JSON (default) or CSV.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.BoolVar(&scanNoValidate, "no-validate", false, "skip checksum validation")
	f.IntVar(&scanWorkers, "workers", 0, "cells processed concurrently (default from config, then GOMAXPROCS)")
	f.StringVarP(&scanFormat, "format", "f", "json", "output format: json or csv")
	f.StringVarP(&scanOutput, "output", "o", "", "write results to this file instead of stdout")
	f.StringVar(&scanLabels, "labels", "", "CSV of address,label[,category] to attach to matching records")
	f.StringVar(&scanCustom, "custom", "", "TOML file of extra custom currencies")
	f.StringVar(&scanMetricsOut, "metrics-out", "", "write Prometheus metrics to this textfile after the run")
}

func runScan(cmd *cobra.Command, args []string) error {
	if scanFormat != "json" && scanFormat != "csv" {
		return fmt.Errorf("unsupported format %q (want json or csv)", scanFormat)
	}

	e, cleanup, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	cfg := e.cfg

	reg, err := buildRegistry(cfg, scanCustom)
	if err != nil {
		return err
	}

	var labels *enrichment.Labels
	if scanLabels != "" {
		if labels, err = enrichment.LoadLabels(scanLabels); err != nil {
			return err
		}
	}

	flt, err := filter.New(&cfg.Filter)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	scorer, err := scoring.New(cfg.Scoring)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	workers := cfg.Extraction.Workers
	if scanWorkers > 0 {
		workers = scanWorkers
	}

	ex, err := extraction.New(reg, extraction.Options{
		ValidateChecksums: cfg.Extraction.ValidateChecksums && !scanNoValidate,
		Workers:           workers,
		Filter:            flt,
		Scorer:            scorer,
		Validator:         validator.New(e.logger),
		Logger:            e.logger,
		Metrics:           extraction.NewMetrics(),
	})
	if err != nil {
		return err
	}

	e.logger.Debug(ctx, "extractor ready",
		zap.Int("currencies", len(ex.Currencies())),
		zap.Int("workers", workers),
	)

	var cells []extraction.Cell
	for _, path := range args {
		fileCells, err := tabular.ReadFile(path)
		if err != nil {
			return err
		}
		e.logger.Debug(ctx, "file loaded", zap.String("path", path), zap.Int("cells", len(fileCells)))
		cells = append(cells, fileCells...)
	}

	result, runErr := ex.Run(ctx, cells)
	if result == nil {
		return runErr
	}

	table := enrichment.NewTable()
	if labels != nil {
		n := labels.Apply(result.Records, table)
		e.logger.Info(ctx, "labels applied", zap.Int("labelled", n), zap.Int("known", labels.Len()))
	}

	out := cmd.OutOrStdout()
	if scanOutput != "" {
		fh, err := os.Create(scanOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer fh.Close()
		out = fh
	}

	if err := writeResult(out, scanFormat, result, table); err != nil {
		return err
	}

	metricsOut := cfg.Metrics.Textfile
	if scanMetricsOut != "" {
		metricsOut = scanMetricsOut
	}
	if metricsOut != "" {
		if err := prometheus.WriteToTextfile(metricsOut, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	// A cancelled run still writes what it found before reporting.
	return runErr
}

func writeResult(w io.Writer, format string, result *extraction.Result, table *enrichment.Table) error {
	switch format {
	case "json":
		return writeJSON(w, result, table)
	case "csv":
		return writeCSV(w, result, table)
	default:
		return errors.New("unsupported format " + format)
	}
}
