// Package ref provides Ref, an observable single-value cell with an optional
// validator, per-cell watchers and compare-and-set.
//
// Every committed value passes the validator. Watchers run after the value
// is committed, in registration order, and see every transition exactly
// once and in commit order. With concurrent writers one goroutine delivers
// the queued transitions while the others return as soon as they commit:
//
//	balance := ref.New(0, ref.WithValidator(func(v int) bool { return v >= 0 }))
//	balance.AddWatch("audit", func(key string, old, new int) error {
//		log.Printf("%s: %d -> %d", key, old, new)
//		return nil
//	})
//
//	balance.SetValue(10)                                  // audit: 0 -> 10
//	_, err := balance.Swap(func(v int) int { return v - 20 }) // INVALID_VALUE, balance still 10
//
// A watcher that returns an error aborts the remaining watchers for that
// change and the error is returned from the write that delivered it. The
// value stays committed.
//
// CompareAndSet compares by identity: == for comparable scalars, pointer
// identity for maps, slices, pointers, channels and funcs. WithEqual
// replaces it. A mismatch is a plain false, never an error.
package ref
