package extraction

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for extraction runs.
type Metrics struct {
	CellsScanned       prometheus.Counter
	CandidatesTotal    *prometheus.CounterVec
	RejectedTotal      *prometheus.CounterVec
	ValidationsTotal   *prometheus.CounterVec
	RecordsTotal       *prometheus.CounterVec
	DuplicatesTotal    prometheus.Counter
	CellPanicsTotal    prometheus.Counter
	RunDuration        prometheus.Histogram
	ConfidenceObserved *prometheus.HistogramVec
}

// NewMetrics registers the extraction metrics with the default registry
// once and returns the shared instance.
//
// Metrics:
//   - coinscan_extraction_cells_scanned_total
//   - coinscan_extraction_candidates_total{symbol}
//   - coinscan_extraction_rejected_total{symbol,reason}
//   - coinscan_extraction_validations_total{symbol,result}
//   - coinscan_extraction_records_total{symbol}
//   - coinscan_extraction_duplicates_total
//   - coinscan_extraction_cell_panics_total
//   - coinscan_extraction_run_duration_seconds
//   - coinscan_extraction_confidence{symbol}
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		opts := func(name, help string) prometheus.CounterOpts {
			return prometheus.CounterOpts{
				Namespace: "coinscan",
				Subsystem: "extraction",
				Name:      name,
				Help:      help,
			}
		}

		globalMetrics = &Metrics{
			CellsScanned: promauto.NewCounter(opts("cells_scanned_total", "Total number of cells scanned")),
			CandidatesTotal: promauto.NewCounterVec(
				opts("candidates_total", "Pattern matches within length bounds, before filtering"),
				[]string{"symbol"},
			),
			RejectedTotal: promauto.NewCounterVec(
				opts("rejected_total", "Candidates dropped by the false-positive filter or validation"),
				[]string{"symbol", "reason"},
			),
			ValidationsTotal: promauto.NewCounterVec(
				opts("validations_total", "Validator calls by outcome"),
				[]string{"symbol", "result"}, // "valid", "invalid", "degraded"
			),
			RecordsTotal: promauto.NewCounterVec(
				opts("records_total", "Accepted address records"),
				[]string{"symbol"},
			),
			DuplicatesTotal: promauto.NewCounter(opts("duplicates_total", "Records marked as duplicates")),
			CellPanicsTotal: promauto.NewCounter(opts("cell_panics_total", "Cells abandoned after a recovered panic")),
			RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: "coinscan",
				Subsystem: "extraction",
				Name:      "run_duration_seconds",
				Help:      "Duration of extraction runs in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
			}),
			ConfidenceObserved: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "coinscan",
				Subsystem: "extraction",
				Name:      "confidence",
				Help:      "Confidence of accepted records",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			}, []string{"symbol"}),
		}
	})

	return globalMetrics
}

// RecordCandidate counts a pattern hit.
func (m *Metrics) RecordCandidate(symbol string) {
	if m == nil {
		return
	}
	m.CandidatesTotal.WithLabelValues(symbol).Inc()
}

// RecordRejection counts a dropped candidate.
func (m *Metrics) RecordRejection(symbol, reason string) {
	if m == nil {
		return
	}
	m.RejectedTotal.WithLabelValues(symbol, reason).Inc()
}

// RecordValidation counts a validator outcome.
func (m *Metrics) RecordValidation(symbol, result string) {
	if m == nil {
		return
	}
	m.ValidationsTotal.WithLabelValues(symbol, result).Inc()
}

// RecordAccepted counts an accepted record and its confidence.
func (m *Metrics) RecordAccepted(symbol string, confidence float64) {
	if m == nil {
		return
	}
	m.RecordsTotal.WithLabelValues(symbol).Inc()
	m.ConfidenceObserved.WithLabelValues(symbol).Observe(confidence)
}

// RecordCell counts a scanned cell.
func (m *Metrics) RecordCell() {
	if m == nil {
		return
	}
	m.CellsScanned.Inc()
}

// RecordCellPanic counts a cell whose processing panicked.
func (m *Metrics) RecordCellPanic() {
	if m == nil {
		return
	}
	m.CellPanicsTotal.Inc()
}

// RecordRun observes a finished run.
func (m *Metrics) RecordRun(seconds float64, duplicates int) {
	if m == nil {
		return
	}
	m.RunDuration.Observe(seconds)
	m.DuplicatesTotal.Add(float64(duplicates))
}
