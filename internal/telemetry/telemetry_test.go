package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func restoreGlobal(t *testing.T) {
	t.Helper()
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
}

func TestNew_WithExporter(t *testing.T) {
	restoreGlobal(t)
	exp := tracetest.NewInMemoryExporter()

	tel, err := New(context.Background(), NewDefaultConfig(), WithExporter(exp), WithVersion("1.2.3"))
	require.NoError(t, err)
	assert.True(t, tel.Exporting())

	_, span := otel.Tracer("test").Start(context.Background(), "extraction.run")
	span.End()
	require.NoError(t, tel.ForceFlush(context.Background()))

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "extraction.run", spans[0].Name)

	attrs := map[string]string{}
	for _, kv := range spans[0].Resource.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "coinscan", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])

	require.NoError(t, tel.Shutdown(context.Background()))
	require.NoError(t, tel.Shutdown(context.Background()), "second shutdown should be a no-op")
}

func TestNew_DisabledStillAssignsTraceIDs(t *testing.T) {
	restoreGlobal(t)

	tel, err := New(context.Background(), nil)
	require.NoError(t, err)
	defer tel.Shutdown(context.Background())

	assert.False(t, tel.Exporting())

	_, span := tel.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.True(t, span.SpanContext().HasTraceID())
	assert.True(t, span.SpanContext().IsSampled())
}

func TestNew_SampleRateZero(t *testing.T) {
	restoreGlobal(t)
	exp := tracetest.NewInMemoryExporter()
	cfg := NewDefaultConfig()
	cfg.SampleRate = 0

	tel, err := New(context.Background(), cfg, WithExporter(exp))
	require.NoError(t, err)

	_, span := tel.Tracer("test").Start(context.Background(), "op")
	span.End()
	require.NoError(t, tel.Shutdown(context.Background()))

	assert.Empty(t, exp.GetSpans())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = ""

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid telemetry config")
}

func TestNilTelemetry(t *testing.T) {
	var tel *Telemetry

	assert.False(t, tel.Exporting())
	assert.NotNil(t, tel.Tracer("test"))
	assert.NoError(t, tel.ForceFlush(context.Background()))
	assert.NoError(t, tel.Shutdown(context.Background()))
}
