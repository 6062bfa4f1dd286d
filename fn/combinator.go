package fn

import "github.com/samber/lo"

// Constantly returns a function that always returns v.
func Constantly[T any](v T) func() T {
	return func() T { return v }
}

// Pipeline threads seed through fns from left to right.
func Pipeline[T any](seed T, fns ...func(T) T) T {
	return lo.Reduce(fns, func(acc T, f func(T) T, _ int) T { return f(acc) }, seed)
}

// Compose returns the right-to-left composition of fns: Compose(f, g)(x)
// is f(g(x)). With no functions it is the identity.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			v = fns[i](v)
		}
		return v
	}
}

// Then composes two functions of different types left to right.
func Then[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Curry2 curries a two-argument function taking its arguments last first:
// Curry2(f)(b)(a) is f(a, b).
func Curry2[A, B, R any](f func(A, B) R) func(B) func(A) R {
	return func(b B) func(A) R {
		return func(a A) R { return f(a, b) }
	}
}

// Curry3 curries a three-argument function taking its arguments last
// first: Curry3(f)(c)(b)(a) is f(a, b, c).
func Curry3[A, B, C, R any](f func(A, B, C) R) func(C) func(B) func(A) R {
	return func(c C) func(B) func(A) R {
		return func(b B) func(A) R {
			return func(a A) R { return f(a, b, c) }
		}
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R { return f(a, b) }
}

// Partial2 fixes the first two arguments of f.
func Partial2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R { return f(a, b, c) }
}

// PartialN fixes leading arguments of a variadic f.
func PartialN[T, R any](f func(...T) R, fixed ...T) func(...T) R {
	return func(rest ...T) R {
		return f(append(append([]T(nil), fixed...), rest...)...)
	}
}

// Fnull replaces a zero first argument with def before calling f.
func Fnull[A comparable, R any](f func(A) R, def A) func(A) R {
	return func(a A) R {
		return f(lo.CoalesceOrEmpty(a, def))
	}
}

// Fnull2 replaces zero arguments with the matching defaults before calling
// f.
func Fnull2[A, B comparable, R any](f func(A, B) R, defA A, defB B) func(A, B) R {
	return func(a A, b B) R {
		return f(lo.CoalesceOrEmpty(a, defA), lo.CoalesceOrEmpty(b, defB))
	}
}

// Plucker returns a function reading key from a map. A nil map or a
// missing key yields the zero value.
func Plucker[K comparable, V any](key K) func(map[K]V) V {
	return func(m map[K]V) V { return m[key] }
}
