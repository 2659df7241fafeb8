package extraction

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fyrsmithlabs/coinscan/internal/dedupe"
	"github.com/fyrsmithlabs/coinscan/internal/logging"
	"github.com/fyrsmithlabs/coinscan/internal/record"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// Result is the outcome of a batch run.
type Result struct {
	RunID   string                     `json:"run_id"`
	Records []*record.ExtractedAddress `json:"records"`
	Stats   Statistics                 `json:"statistics"`
	// Cells is the number of cells processed; it is lower than the input
	// length when the run was cancelled.
	Cells   int           `json:"cells"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Run extracts addresses from every cell, marks duplicates and returns the
// records sorted by file, sheet, row and column.
//
// Cells are processed by at most Options.Workers goroutines. When ctx is
// cancelled no further cells are started; Run then returns the records of
// the cells already processed together with ctx.Err().
func (e *Extractor) Run(ctx context.Context, cells []Cell) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)

	ctx, span := e.tracer.Start(ctx, "extraction.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("run.id", runID),
		attribute.Int("cells.count", len(cells)),
		attribute.Int("workers", e.workers),
		attribute.Bool("validate_checksums", e.validate),
	)

	e.logger.Info(ctx, "extraction run started",
		zap.Int("cells", len(cells)),
		zap.Int("workers", e.workers),
		zap.Bool("validate_checksums", e.validate),
	)

	resultsChan := make(chan []*record.ExtractedAddress, e.workers)
	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	var records []*record.ExtractedAddress
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for found := range resultsChan {
			records = append(records, found...)
		}
	}()

	processed := 0
	var runErr error
submit:
	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			runErr = ctx.Err()
			break submit
		}
		processed++

		wg.Add(1)
		go func(c Cell) {
			defer wg.Done()
			defer func() { <-sem }()

			cellCtx := logging.WithSource(ctx, c.File, c.Sheet)
			cellCtx, cellSpan := e.tracer.Start(cellCtx, "extraction.cell")
			cellSpan.SetAttributes(
				attribute.String("source.file", c.File),
				attribute.String("source.sheet", c.Sheet),
				attribute.Int("cell.row", c.Row),
				attribute.Int("cell.column", c.Column),
			)

			found := e.ExtractCell(cellCtx, c)
			cellSpan.SetAttributes(attribute.Int("records.count", len(found)))
			cellSpan.End()

			if len(found) > 0 {
				resultsChan <- found
			}
		}(cell)
	}

	wg.Wait()
	close(resultsChan)
	<-collected

	duplicates := dedupe.Mark(records)
	sort.SliceStable(records, func(i, j int) bool { return record.Less(records[i], records[j]) })

	elapsed := time.Since(start)
	e.metrics.RecordRun(elapsed.Seconds(), duplicates)

	res := &Result{
		RunID:   runID,
		Records: records,
		Stats:   Compute(records),
		Cells:   processed,
		Elapsed: elapsed,
	}

	span.SetAttributes(
		attribute.Int("records.count", len(records)),
		attribute.Int("duplicates.count", duplicates),
	)
	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
		e.logger.Warn(ctx, "extraction run cancelled",
			zap.Int("cells_processed", processed),
			zap.Int("cells_total", len(cells)),
			zap.Error(runErr),
		)
		return res, runErr
	}

	e.logger.Info(ctx, "extraction run finished",
		zap.Int("records", len(records)),
		zap.Int("duplicates", duplicates),
		zap.Duration("elapsed", elapsed),
	)
	return res, nil
}
