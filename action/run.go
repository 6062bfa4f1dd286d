package action

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/observability"
)

type runConfig struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

// RunOption configures Run.
type RunOption func(*runConfig)

// WithLogger logs chain completion and failures to l.
func WithLogger(l *logger.Logger) RunOption {
	return func(c *runConfig) { c.log = l }
}

// WithMetrics records chain counts and durations to m.
func WithMetrics(m *observability.Metrics) RunOption {
	return func(c *runConfig) { c.metrics = m }
}

// Run executes a fallible chain inside an "action.chain" span named by
// chain. The span carries the number of actions and of collected values.
// ctx is checked before each action; cancellation aborts the chain with
// ctx.Err().
func Run[S, V, R any](ctx context.Context, chain string, acts []FallibleStateAction[S, V], cont FallibleContinuation[S, V, R], initial S, opts ...RunOption) (R, error) {
	cfg := runConfig{log: logger.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx, span := observability.StartSpan(ctx, observability.SpanActionChain, trace.WithAttributes(
		attribute.String(observability.AttrChain, chain),
		attribute.Int(observability.AttrActionCount, len(acts)),
	))
	defer span.End()

	log := cfg.log.WithContext(ctx)
	start := time.Now()

	result, collected, err := runChain(ctx, acts, cont, initial)
	observability.SetSpanAttribute(ctx, observability.AttrValueCount, collected)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
		observability.SetSpanError(ctx, err)
		log.Error("action chain failed", logger.MergeWithError(logger.Fields(
			observability.AttrChain, chain,
			logger.FieldActions, len(acts),
		), err))
	} else {
		log.Debug("action chain completed", logger.Fields(
			observability.AttrChain, chain,
			logger.FieldActions, len(acts),
			logger.FieldValues, collected,
		))
	}
	cfg.metrics.RecordChain(ctx, chain, status, time.Since(start))

	return result, err
}

func runChain[S, V, R any](ctx context.Context, acts []FallibleStateAction[S, V], cont FallibleContinuation[S, V, R], initial S) (R, int, error) {
	var zero R
	values, final, err := thread(ctx, acts, initial)
	if err != nil {
		return zero, 0, err
	}
	result, err := cont(values)(final)
	if err != nil {
		return zero, len(values), err
	}
	return result, len(values), nil
}
