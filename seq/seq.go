package seq

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/kbukum/funkit/errors"
)

// Cat concatenates colls into a new slice.
func Cat[T any](colls ...[]T) []T {
	return lo.Flatten(colls)
}

// Cons returns a new slice with head prepended to tail.
func Cons[T any](head T, tail []T) []T {
	return Cat([]T{head}, tail)
}

// ButLast returns all but the last element.
func ButLast[T any](coll []T) []T {
	return lo.DropRight(coll, 1)
}

// Second returns the second element, if there is one.
func Second[T any](coll []T) (T, bool) {
	if len(coll) < 2 {
		var zero T
		return zero, false
	}
	return coll[1], true
}

// Interpose places sep between consecutive elements.
func Interpose[T any](sep T, coll []T) []T {
	if len(coll) < 2 {
		return slices.Clone(coll)
	}
	return ButLast(Mapcat(func(e T) []T { return []T{e, sep} }, coll))
}

// Interleave takes one element from each collection in turn. Shorter
// collections drop out once exhausted.
func Interleave[T any](colls ...[]T) []T {
	return lo.Interleave(colls...)
}

// Repeat returns times copies of elem.
func Repeat[T any](times int, elem T) ([]T, error) {
	if times < 0 {
		return nil, errors.InvalidArgument("repeat", "expected a non-negative count")
	}
	return lo.RepeatBy(times, func(int) T { return elem }), nil
}

// Cycle returns coll repeated times times. A non-positive count yields an
// empty slice.
func Cycle[T any](times int, coll []T) []T {
	if times <= 0 {
		return []T{}
	}
	out := make([]T, 0, times*len(coll))
	for range times {
		out = append(out, coll...)
	}
	return out
}

// SplitAt splits coll before index. Out of range indexes are clamped.
func SplitAt[T any](index int, coll []T) ([]T, []T) {
	index = max(0, min(index, len(coll)))
	return slices.Clone(coll[:index]), slices.Clone(coll[index:])
}

// SplitWith splits coll at the first element failing pred.
func SplitWith[T any](pred func(T) bool, coll []T) ([]T, []T) {
	return SplitAt(firstFailing(pred, coll), coll)
}

// TakeWhile returns the leading elements satisfying pred.
func TakeWhile[T any](pred func(T) bool, coll []T) []T {
	head, _ := SplitWith(pred, coll)
	return head
}

// DropWhile drops the leading elements satisfying pred.
func DropWhile[T any](pred func(T) bool, coll []T) []T {
	return lo.DropWhile(coll, pred)
}

func firstFailing[T any](pred func(T) bool, coll []T) int {
	i := slices.IndexFunc(coll, func(e T) bool { return !pred(e) })
	if i < 0 {
		return len(coll)
	}
	return i
}

// TakeSkipping returns every nth element starting with the first.
func TakeSkipping[T any](n int, coll []T) ([]T, error) {
	if n <= 0 {
		return nil, errors.InvalidArgument("takeSkipping", "expected a positive step")
	}
	return lo.Filter(coll, func(_ T, i int) bool { return i%n == 0 }), nil
}

// Keep maps f over coll and keeps the present results.
func Keep[T, R any](f func(T) mo.Option[R], coll []T) []R {
	return lo.FilterMap(coll, func(e T, _ int) (R, bool) {
		return f(e).Get()
	})
}

// KeepIndexed is Keep with the element index passed to f.
func KeepIndexed[T, R any](f func(int, T) mo.Option[R], coll []T) []R {
	return lo.FilterMap(coll, func(e T, i int) (R, bool) {
		return f(i, e).Get()
	})
}

// Remove returns the elements not satisfying pred.
func Remove[T any](pred func(T) bool, coll []T) []T {
	return lo.Reject(coll, func(e T, _ int) bool { return pred(e) })
}

// Mapcat maps f over coll and concatenates the results.
func Mapcat[T, R any](f func(T) []R, coll []T) []R {
	return lo.FlatMap(coll, func(e T, _ int) []R { return f(e) })
}

// Reductions returns every intermediate accumulator of a left fold.
func Reductions[T, A any](f func(acc A, e T) A, init A, coll []T) []A {
	out := make([]A, 0, len(coll))
	acc := init
	for _, e := range coll {
		acc = f(acc, e)
		out = append(out, acc)
	}
	return out
}

// IterateUntil applies step starting from seed and collects results while
// check holds. The first result failing check is not included.
func IterateUntil[T any](step func(T) T, check func(T) bool, seed T) []T {
	var out []T
	for v := step(seed); check(v); v = step(v) {
		out = append(out, v)
	}
	return out
}

// Repeatedly calls f times times with the call index.
func Repeatedly[T any](times int, f func(int) T) ([]T, error) {
	if times < 0 {
		return nil, errors.InvalidArgument("repeatedly", "expected a non-negative count")
	}
	return lo.Times(times, f), nil
}

// MaxKey returns the item with the largest key. Ties go to the later item.
func MaxKey[T any, K cmp.Ordered](key func(T) K, items ...T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return lo.MaxBy(items, func(a, b T) bool { return key(a) >= key(b) }), true
}

// Frequencies counts occurrences of each distinct element.
func Frequencies[T comparable](coll []T) map[T]int {
	return lo.CountValues(coll)
}
