package action

import (
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Result is what a StateAction produces: an optional value and the next
// state.
type Result[S, V any] struct {
	Value mo.Option[V]
	State S
}

// StateAction computes a Result from the prior state.
type StateAction[S, V any] func(prior S) Result[S, V]

// FallibleStateAction is a StateAction that may fail.
type FallibleStateAction[S, V any] func(prior S) (Result[S, V], error)

// Continuation receives the collected values, then the final state.
type Continuation[S, V, R any] func(values []V) func(final S) R

// FallibleContinuation is a Continuation whose result may be an error.
type FallibleContinuation[S, V, R any] func(values []V) func(final S) (R, error)

// Computation is a deferred chain waiting for its initial state.
type Computation[S, R any] func(initial S) R

// FallibleComputation is a Computation that may fail.
type FallibleComputation[S, R any] func(initial S) (R, error)

// Def builds an argument-taking action from a state transition and a value
// extraction. Both see the argument and the prior state.
func Def[A, S, V any](transition func(arg A, prior S) S, extract func(arg A, prior S) mo.Option[V]) func(A) StateAction[S, V] {
	return func(arg A) StateAction[S, V] {
		return func(prior S) Result[S, V] {
			return Result[S, V]{
				Value: extract(arg, prior),
				State: transition(arg, prior),
			}
		}
	}
}

// DefE is Def for transitions and extractions that may fail.
func DefE[A, S, V any](transition func(arg A, prior S) (S, error), extract func(arg A, prior S) (mo.Option[V], error)) func(A) FallibleStateAction[S, V] {
	return func(arg A) FallibleStateAction[S, V] {
		return func(prior S) (Result[S, V], error) {
			value, err := extract(arg, prior)
			if err != nil {
				return Result[S, V]{}, err
			}
			next, err := transition(arg, prior)
			if err != nil {
				return Result[S, V]{}, err
			}
			return Result[S, V]{Value: value, State: next}, nil
		}
	}
}

// Nothing is a value extraction that never produces a value.
func Nothing[A, S, V any](A, S) mo.Option[V] {
	return mo.None[V]()
}

// Fallible adapts a StateAction to a FallibleStateAction that never fails.
func Fallible[S, V any](act StateAction[S, V]) FallibleStateAction[S, V] {
	return func(prior S) (Result[S, V], error) {
		return act(prior), nil
	}
}

// Actions composes acts into a computation. Given an initial state it runs
// every action left to right, each on its predecessor's state, collects the
// present values in run order, then calls cont(values)(finalState).
func Actions[S, V, R any](acts []StateAction[S, V], cont Continuation[S, V, R]) Computation[S, R] {
	return func(initial S) R {
		state := initial
		collected := make([]V, 0, len(acts))
		for _, act := range acts {
			res := act(state)
			if v, ok := res.Value.Get(); ok {
				collected = append(collected, v)
			}
			state = res.State
		}
		return cont(collected)(state)
	}
}

// ActionsE is Actions for fallible actions and continuations. The first
// error aborts the chain and is returned as-is.
func ActionsE[S, V, R any](acts []FallibleStateAction[S, V], cont FallibleContinuation[S, V, R]) FallibleComputation[S, R] {
	return func(initial S) (R, error) {
		values, final, err := thread(context.Background(), acts, initial)
		if err != nil {
			var zero R
			return zero, err
		}
		return cont(values)(final)
	}
}

func thread[S, V any](ctx context.Context, acts []FallibleStateAction[S, V], initial S) ([]V, S, error) {
	state := initial
	collected := make([]mo.Option[V], 0, len(acts))
	for _, act := range acts {
		if err := ctx.Err(); err != nil {
			var zero S
			return nil, zero, err
		}
		res, err := act(state)
		if err != nil {
			var zero S
			return nil, zero, err
		}
		collected = append(collected, res.Value)
		state = res.State
	}
	values := lo.FilterMap(collected, func(v mo.Option[V], _ int) (V, bool) {
		return v.Get()
	})
	return values, state, nil
}

// Outcome is the collected values and final state of a chain.
type Outcome[S, V any] struct {
	Values []V
	State  S
}

// Collect is a continuation returning the values and final state unchanged.
func Collect[S, V any]() Continuation[S, V, Outcome[S, V]] {
	return func(values []V) func(S) Outcome[S, V] {
		return func(final S) Outcome[S, V] {
			return Outcome[S, V]{Values: values, State: final}
		}
	}
}

// Swapper is a cell whose value can be replaced by an update function.
type Swapper[S any] interface {
	Swap(update func(S) S) (S, error)
}

// Apply runs acts against the cell's current value and commits the final
// state through Swap, so the cell's validator and watchers apply. It
// returns the collected values. If the commit fails nothing is returned.
func Apply[S, V any](cell Swapper[S], acts []StateAction[S, V]) ([]V, error) {
	var values []V
	_, err := cell.Swap(func(prior S) S {
		out := Actions(acts, Collect[S, V]())(prior)
		values = out.Values
		return out.State
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
