package logging

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 6)

	if span := trace.SpanFromContext(ctx); span.SpanContext().IsValid() {
		sc := span.SpanContext()
		fields = append(fields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
		if sc.IsSampled() {
			fields = append(fields, zap.Bool("trace_sampled", true))
		}
	}

	if runID := RunIDFromContext(ctx); runID != "" {
		fields = append(fields, zap.String("run.id", runID))
	}

	if src, ok := SourceFromContext(ctx); ok {
		fields = append(fields, zap.String("source.file", src.File))
		if src.Sheet != "" {
			fields = append(fields, zap.String("source.sheet", src.Sheet))
		}
	}

	return fields
}

type runCtxKey struct{}
type sourceCtxKey struct{}

// Source identifies the file (and optional sheet) a cell came from.
type Source struct {
	File  string
	Sheet string
}

// WithRunID tags ctx with an extraction run identifier.
// Panics if runID is empty.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		panic("logging: run ID cannot be empty")
	}
	return context.WithValue(ctx, runCtxKey{}, runID)
}

// RunIDFromContext returns the run identifier, or "" if none.
func RunIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(runCtxKey{}).(string); ok {
		return s
	}
	return ""
}

// WithSource tags ctx with the file and sheet being scanned.
func WithSource(ctx context.Context, file, sheet string) context.Context {
	return context.WithValue(ctx, sourceCtxKey{}, Source{File: file, Sheet: sheet})
}

// SourceFromContext returns the source set by WithSource.
func SourceFromContext(ctx context.Context) (Source, bool) {
	s, ok := ctx.Value(sourceCtxKey{}).(Source)
	return s, ok
}
