package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Telemetry owns the process TracerProvider.
type Telemetry struct {
	config    *Config
	provider  *trace.TracerProvider
	exporting bool

	shutdown atomic.Bool
}

// New validates cfg, builds a TracerProvider and installs it as the global
// provider together with the W3C trace-context propagator.
func New(ctx context.Context, cfg *Config, opts ...Option) (*Telemetry, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	o := options{version: "dev"}
	for _, opt := range opts {
		opt(&o)
	}

	exp := o.exporter
	if exp == nil && cfg.Enabled {
		var err error
		if exp, err = newExporter(ctx, cfg); err != nil {
			return nil, err
		}
	}

	tpOpts := []trace.TracerProviderOption{
		trace.WithResource(newResource(cfg, o.version)),
		trace.WithSampler(newSampler(cfg.SampleRate)),
	}
	if exp != nil {
		tpOpts = append(tpOpts, trace.WithBatcher(exp))
	}

	t := &Telemetry{
		config:    cfg,
		provider:  trace.NewTracerProvider(tpOpts...),
		exporting: exp != nil,
	}

	otel.SetTracerProvider(t.provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return t, nil
}

// Tracer returns a tracer for the given instrumentation scope.
func (t *Telemetry) Tracer(name string, opts ...oteltrace.TracerOption) oteltrace.Tracer {
	if t == nil || t.provider == nil {
		return otel.GetTracerProvider().Tracer(name, opts...)
	}
	return t.provider.Tracer(name, opts...)
}

// Exporting reports whether spans leave the process.
func (t *Telemetry) Exporting() bool {
	return t != nil && t.exporting
}

// ForceFlush exports all pending spans.
func (t *Telemetry) ForceFlush(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.ForceFlush(ctx)
}

// Shutdown flushes and stops the provider. Without a deadline on ctx the
// configured shutdown timeout applies. Later calls are no-ops.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil || !t.shutdown.CompareAndSwap(false, true) {
		return nil
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.ShutdownTimeout)
		defer cancel()
	}

	if err := t.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("trace provider shutdown: %w", err)
	}
	return nil
}
