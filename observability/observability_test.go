package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("test-service")

	if cfg.ServiceName != "test-service" {
		t.Errorf("expected ServiceName 'test-service', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("test-service")
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestConfig_DefaultsAndValidate(t *testing.T) {
	cfg := Config{Tracing: true}
	cfg.ApplyDefaults()
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", cfg.Endpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := Config{SampleRate: 2}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for sample rate above 1")
	}
}

func TestSampler(t *testing.T) {
	if sampler(1).Description() != sdktrace.AlwaysSample().Description() {
		t.Error("expected AlwaysSample for rate 1")
	}
	if sampler(0).Description() != sdktrace.NeverSample().Description() {
		t.Error("expected NeverSample for rate 0")
	}
}

func TestNewMetrics_Noop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordCommit(ctx, "counter")
	metrics.RecordRejection(ctx, "counter")
	metrics.RecordCASMismatch(ctx, "counter")
	metrics.RecordNotifications(ctx, "counter", 2)
	metrics.RecordChain(ctx, "stack", StatusOK, time.Millisecond)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	ctx := context.Background()
	// A nil *Metrics must be safe to use.
	m.RecordCommit(ctx, "c")
	m.RecordRejection(ctx, "c")
	m.RecordCASMismatch(ctx, "c")
	m.RecordNotifications(ctx, "c", 1)
	m.RecordChain(ctx, "c", StatusOK, 0)
}

func TestMetrics_CommitCounter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	metrics.RecordCommit(ctx, "counter")
	metrics.RecordCommit(ctx, "counter")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	if got := sumCounter(rm, "cell.commits"); got != 2 {
		t.Errorf("expected 2 commits, got %d", got)
	}
}

func sumCounter(rm metricdata.ResourceMetrics, name string) int64 {
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestTracerAndMeter(t *testing.T) {
	if Tracer("test-tracer") == nil {
		t.Fatal("expected non-nil tracer")
	}
	if Meter("test-meter") == nil {
		t.Fatal("expected non-nil meter")
	}
}

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test-operation")
	defer span.End()
	if ctx == nil || span == nil {
		t.Fatal("expected non-nil context and span")
	}
}

func TestSetSpanAttributeAndError(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, span := StartSpan(context.Background(), SpanActionChain)
	SetSpanAttribute(ctx, AttrChain, "stack")
	SetSpanAttribute(ctx, AttrActionCount, 6)
	SetSpanAttribute(ctx, "unsupported-key", struct{}{})
	SetSpanError(ctx, fmt.Errorf("pop on empty stack"))
	span.End()

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Status.Code != codes.Error {
		t.Errorf("expected error status, got %v", spans[0].Status.Code)
	}
	if len(spans[0].Attributes) != 2 {
		t.Errorf("expected 2 attributes, got %d", len(spans[0].Attributes))
	}
}

func TestSetSpanAttributeNoSpan(t *testing.T) {
	ctx := context.Background()
	// Should not panic with a non-recording span.
	SetSpanAttribute(ctx, "key", "value")
	SetSpanError(ctx, fmt.Errorf("no span error"))
}
