package ref

import (
	"context"

	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/resilience"
)

// SwapContext commits update(current) like Swap, but bounds the number of
// attempts and backs off between them. An attempt that loses to another
// writer is retried; an error from update or the validator is returned
// immediately. When attempts run out the error has code CONFLICT.
func (r *Ref[T]) SwapContext(ctx context.Context, cfg resilience.RetryConfig, update func(T) (T, error)) (T, error) {
	var (
		seq  uint64
		next T
	)
	_, err := resilience.Retry(ctx, cfg, func() (struct{}, error) {
		current, version := r.read()
		candidate, err := update(current)
		if err != nil {
			return struct{}{}, err
		}

		committedSeq, committed, err := r.commitIfVersion(version, candidate)
		if err != nil {
			return struct{}{}, err
		}
		if !committed {
			r.metrics.RecordCASMismatch(ctx, r.name)
			return struct{}{}, errors.Conflict("value changed during update")
		}
		seq, next = committedSeq, candidate
		return struct{}{}, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return next, r.deliver(seq)
}
