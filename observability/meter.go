package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/funkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments cells and action chains report to.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	commits       metric.Int64Counter
	rejections    metric.Int64Counter
	casMismatches metric.Int64Counter
	notifications metric.Int64Counter
	chainTotal    metric.Int64Counter
	chainDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	commits, err := meter.Int64Counter("cell.commits",
		metric.WithDescription("Values committed to cells"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cell.commits counter: %w", err)
	}

	rejections, err := meter.Int64Counter("cell.rejections",
		metric.WithDescription("Candidate values rejected by a cell validator"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cell.rejections counter: %w", err)
	}

	casMismatches, err := meter.Int64Counter("cell.cas.mismatches",
		metric.WithDescription("Compare-and-set calls whose expected value did not match"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cell.cas.mismatches counter: %w", err)
	}

	notifications, err := meter.Int64Counter("cell.notifications",
		metric.WithDescription("Watcher callbacks invoked"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cell.notifications counter: %w", err)
	}

	chainTotal, err := meter.Int64Counter("action.chain.total",
		metric.WithDescription("Action chains executed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating action.chain.total counter: %w", err)
	}

	chainDuration, err := meter.Float64Histogram("action.chain.duration",
		metric.WithDescription("Duration of action chains in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating action.chain.duration histogram: %w", err)
	}

	return &Metrics{
		commits:       commits,
		rejections:    rejections,
		casMismatches: casMismatches,
		notifications: notifications,
		chainTotal:    chainTotal,
		chainDuration: chainDuration,
	}, nil
}

// RecordCommit records a committed value on the named cell.
func (m *Metrics) RecordCommit(ctx context.Context, cell string) {
	if m == nil {
		return
	}
	m.commits.Add(ctx, 1, cellAttr(cell))
}

// RecordRejection records a validator rejection on the named cell.
func (m *Metrics) RecordRejection(ctx context.Context, cell string) {
	if m == nil {
		return
	}
	m.rejections.Add(ctx, 1, cellAttr(cell))
}

// RecordCASMismatch records a compare-and-set that did not match.
func (m *Metrics) RecordCASMismatch(ctx context.Context, cell string) {
	if m == nil {
		return
	}
	m.casMismatches.Add(ctx, 1, cellAttr(cell))
}

// RecordNotifications records n watcher invocations for one change.
func (m *Metrics) RecordNotifications(ctx context.Context, cell string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.notifications.Add(ctx, int64(n), cellAttr(cell))
}

// RecordChain records one action chain execution.
func (m *Metrics) RecordChain(ctx context.Context, chain, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.chainTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrChain, chain),
		attribute.String(AttrStatus, status),
	))
	m.chainDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrChain, chain),
	))
}

func cellAttr(cell string) metric.AddOption {
	return metric.WithAttributes(attribute.String(AttrCell, cell))
}
