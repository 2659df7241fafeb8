package extraction

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/fyrsmithlabs/coinscan/internal/filter"
	"github.com/fyrsmithlabs/coinscan/internal/logging"
	"github.com/fyrsmithlabs/coinscan/internal/record"
	"github.com/fyrsmithlabs/coinscan/internal/registry"
	"github.com/fyrsmithlabs/coinscan/internal/scoring"
	"github.com/fyrsmithlabs/coinscan/internal/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/fyrsmithlabs/coinscan/internal/extraction"

// ErrNilRegistry is returned by New when no registry is supplied.
var ErrNilRegistry = errors.New("extraction: registry is required")

// Cell is one piece of text at a 1-indexed position in a source file.
type Cell struct {
	Text   string
	File   string
	Sheet  string
	Row    int
	Column int
}

// Options configures an Extractor. Zero values select defaults.
type Options struct {
	// ValidateChecksums runs each candidate through its family validator.
	// Custom currencies have none, and currencies without a checksum gain
	// no confidence from passing.
	ValidateChecksums bool

	// Workers bounds the number of cells processed concurrently by Run
	// (default: GOMAXPROCS).
	Workers int

	Filter    *filter.Filter
	Scorer    *scoring.Scorer
	Validator *validator.Validator
	Logger    *logging.Logger

	// Metrics is optional.
	Metrics *Metrics
}

// Extractor finds currency addresses in cells.
//
// It holds only read-only state after New returns and is safe for
// concurrent use.
type Extractor struct {
	currencies []*registry.CurrencyPattern
	validate   bool
	workers    int

	filter    *filter.Filter
	scorer    *scoring.Scorer
	validator *validator.Validator
	logger    *logging.Logger
	metrics   *Metrics
	tracer    trace.Tracer
}

// New seals reg and returns an Extractor over its currencies. Currencies
// registered earlier take precedence when several match the same text.
func New(reg *registry.Registry, opts Options) (*Extractor, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	f := opts.Filter
	if f == nil {
		var err error
		if f, err = filter.New(nil); err != nil {
			return nil, fmt.Errorf("default filter: %w", err)
		}
	}

	s := opts.Scorer
	if s == nil {
		var err error
		if s, err = scoring.New(scoring.DefaultWeights()); err != nil {
			return nil, fmt.Errorf("default scorer: %w", err)
		}
	}

	v := opts.Validator
	if v == nil {
		v = validator.New(logger)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	reg.Seal()
	return &Extractor{
		currencies: reg.All(),
		validate:   opts.ValidateChecksums,
		workers:    workers,
		filter:     f,
		scorer:     s,
		validator:  v,
		logger:     logger.Named("extraction"),
		metrics:    opts.Metrics,
		tracer:     otel.Tracer(instrumentationName),
	}, nil
}

// Currencies returns the currencies scanned, in precedence order.
func (e *Extractor) Currencies() []*registry.CurrencyPattern {
	out := make([]*registry.CurrencyPattern, len(e.currencies))
	copy(out, e.currencies)
	return out
}

// ExtractCell returns the addresses accepted in one cell.
//
// An address string is reported at most once per cell, under the first
// currency that accepts it. A panic while processing the cell is recovered;
// the cell then yields no records.
func (e *Extractor) ExtractCell(ctx context.Context, cell Cell) (out []*record.ExtractedAddress) {
	e.metrics.RecordCell()
	if cell.Text == "" {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			e.metrics.RecordCellPanic()
			e.logger.Error(ctx, "cell abandoned after panic",
				zap.String("file", cell.File),
				zap.String("sheet", cell.Sheet),
				zap.Int("row", cell.Row),
				zap.Int("column", cell.Column),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	accepted := make(map[string]struct{})
	for _, c := range e.currencies {
		for _, cand := range Scan(cell.Text, c) {
			if _, taken := accepted[cand.Address]; taken {
				continue
			}
			e.metrics.RecordCandidate(c.Symbol)

			rec, ok := e.evaluate(ctx, cell, c, cand)
			if !ok {
				continue
			}
			accepted[cand.Address] = struct{}{}
			e.metrics.RecordAccepted(c.Symbol, rec.Confidence)
			e.logger.Trace(ctx, "candidate accepted",
				zap.String("symbol", c.Symbol),
				zap.String("location", rec.Location()),
				zap.Float64("confidence", rec.Confidence),
			)
			out = append(out, rec)
		}
	}
	return out
}

// evaluate filters, scores and optionally validates one candidate.
func (e *Extractor) evaluate(ctx context.Context, cell Cell, c *registry.CurrencyPattern, cand Candidate) (*record.ExtractedAddress, bool) {
	before, after := filter.Context(cell.Text, cand.Start, cand.End, e.filter.Window())
	if v := e.filter.Check(c.Symbol, cand.Address, before, after); v.Rejected {
		e.metrics.RecordRejection(c.Symbol, string(v.Reason))
		e.logger.Debug(ctx, "candidate rejected",
			zap.String("symbol", c.Symbol),
			zap.String("address", cand.Address),
			zap.String("reason", string(v.Reason)),
			zap.String("detail", v.Detail),
		)
		return nil, false
	}

	score := e.scorer.Base(scoring.Match{
		Symbol:       c.Symbol,
		Address:      cand.Address,
		PatternIndex: cand.PatternIndex,
		Strict:       cand.Strict,
		MinLength:    c.MinLength,
		MaxLength:    c.MaxLength,
		Bias:         c.Bias,
	})

	var class string
	if e.validate && c.Family != validator.FamilyGeneric {
		outcome := e.validator.Validate(ctx, c.Family, cand.Address)
		e.metrics.RecordValidation(c.Symbol, validationResult(outcome))

		if outcome.Reject {
			e.metrics.RecordRejection(c.Symbol, "false_positive")
			e.logger.Debug(ctx, "candidate rejected",
				zap.String("symbol", c.Symbol),
				zap.String("address", cand.Address),
				zap.String("reason", "false_positive"),
				zap.String("detail", outcome.Reason),
			)
			return nil, false
		}

		// Without a checksum the validator only screens; a pass adds nothing.
		delta := outcome.Delta
		if !c.HasChecksum {
			delta = 0
		}

		var keep bool
		score, keep = e.scorer.ApplyValidation(score, cand.Strict, outcome.Valid, delta)
		if !keep {
			e.metrics.RecordRejection(c.Symbol, "validation")
			return nil, false
		}
		class = outcome.Classification
	}

	return &record.ExtractedAddress{
		Address:        cand.Address,
		Symbol:         c.Symbol,
		Name:           c.Name,
		File:           cell.File,
		Sheet:          cell.Sheet,
		Row:            cell.Row,
		Column:         cell.Column,
		Confidence:     score,
		Classification: class,
		DuplicateCount: 1,
	}, true
}

func validationResult(o validator.Outcome) string {
	switch {
	case !o.Valid:
		return "invalid"
	case o.Strength == validator.StrengthDegraded:
		return "degraded"
	default:
		return "valid"
	}
}
