package fn

import (
	"cmp"

	"github.com/samber/lo"
)

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

// Integer is any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is any integer or floating point type.
type Number interface {
	Integer | ~float32 | ~float64
}

// Complement negates p.
func Complement[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Conjoin returns a predicate over sequences that holds when every element
// satisfies every predicate. It short-circuits on the first failure and
// holds for an empty sequence.
func Conjoin[T any](preds []Predicate[T]) Predicate[[]T] {
	return func(coll []T) bool {
		return lo.EveryBy(coll, func(e T) bool {
			return lo.EveryBy(preds, func(p Predicate[T]) bool { return p(e) })
		})
	}
}

// Disjoin returns a predicate over sequences that holds when some element
// satisfies some predicate. It short-circuits on the first success and
// fails for an empty sequence.
func Disjoin[T any](preds []Predicate[T]) Predicate[[]T] {
	return func(coll []T) bool {
		return lo.SomeBy(coll, func(e T) bool {
			return lo.SomeBy(preds, func(p Predicate[T]) bool { return p(e) })
		})
	}
}

// Juxt returns a function applying every fn to its argument, collecting
// the results in order.
func Juxt[T, R any](fns []func(T) R) func(T) []R {
	return func(v T) []R {
		return lo.Map(fns, func(f func(T) R, _ int) R { return f(v) })
	}
}

// IsEven reports whether x is divisible by two.
func IsEven[T Integer](x T) bool { return x&1 == 0 }

// IsOdd reports whether x is not divisible by two.
func IsOdd[T Integer](x T) bool { return !IsEven(x) }

// IsPos reports whether x is greater than zero.
func IsPos[T Number](x T) bool { return x > 0 }

// IsNeg reports whether x is less than zero.
func IsNeg[T Number](x T) bool { return x < 0 }

// IsZero reports whether x equals zero.
func IsZero[T Number](x T) bool { return x == 0 }

// Increasing reports whether xs is strictly increasing.
func Increasing[T cmp.Ordered](xs ...T) bool {
	return monotonic(xs, func(a, b T) bool { return a < b })
}

// Decreasing reports whether xs is strictly decreasing.
func Decreasing[T cmp.Ordered](xs ...T) bool {
	return monotonic(xs, func(a, b T) bool { return a > b })
}

// IncreasingOrEq reports whether xs never decreases.
func IncreasingOrEq[T cmp.Ordered](xs ...T) bool {
	return monotonic(xs, func(a, b T) bool { return a <= b })
}

// DecreasingOrEq reports whether xs never increases.
func DecreasingOrEq[T cmp.Ordered](xs ...T) bool {
	return monotonic(xs, func(a, b T) bool { return a >= b })
}

func monotonic[T any](xs []T, ok func(prev, next T) bool) bool {
	for i := 1; i < len(xs); i++ {
		if !ok(xs[i-1], xs[i]) {
			return false
		}
	}
	return true
}
