// Package observability provides OpenTelemetry tracing and metrics for
// funkit.
//
// Cells report commits, validator rejections, compare-and-set mismatches
// and watcher notifications through Metrics; action chains run through
// action.Run produce one span per computation.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("funkit"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("funkit"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("funkit"))
//	counter := ref.New(0, ref.WithName[int]("counter"), ref.WithMetrics[int](metrics))
package observability
