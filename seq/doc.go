// Package seq provides sequence and association helpers. None of them
// modifies its input; every result is freshly allocated.
package seq
