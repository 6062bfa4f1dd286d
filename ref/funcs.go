package ref

import (
	"github.com/samber/lo"

	"github.com/kbukum/funkit/validation"
)

// Set commits v to c.
func Set[T any](c Settable[T], v T) (T, error) {
	return c.SetValue(v)
}

// SwapFn commits update(current) to c.
func SwapFn[T any](c Settable[T], update func(T) T) (T, error) {
	return c.Swap(update)
}

// SnapshotOf returns a copy of c's current value.
func SnapshotOf[T any](c Settable[T]) T {
	return c.Snapshot()
}

// CAS is CompareAndSet on c.
func CAS[T any](c CASCapable[T], expected, newValue T) (bool, error) {
	return c.CompareAndSet(expected, newValue)
}

// AddWatch registers w on c under key.
func AddWatch[T any](c Observable[T], key string, w Watcher[T]) string {
	return c.AddWatch(key, w)
}

// RemoveWatch unregisters the watcher under key from c.
func RemoveWatch[T any](c Observable[T], key string) (Watcher[T], bool) {
	return c.RemoveWatch(key)
}

// Struct returns a validator that accepts values passing their
// `validate:"..."` struct tags.
func Struct[T any]() Validator[T] {
	return func(v T) bool {
		return validation.Validate(v) == nil
	}
}

// Var returns a validator that checks a value against a single tag
// expression such as "gte=0,lte=100".
func Var[T any](tag string) Validator[T] {
	return func(v T) bool {
		return validation.ValidateVar(v, tag) == nil
	}
}

// All returns a validator that accepts values every validator accepts.
func All[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) bool {
		return lo.EveryBy(validators, func(fn Validator[T]) bool { return fn(v) })
	}
}
