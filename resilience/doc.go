// Package resilience retries operations that fail with a retryable error.
//
// Cells use it for contended updates: a compare-and-set that loses a race
// reports a retryable CONFLICT and is attempted again after a jittered
// exponential backoff, while a validation failure stops immediately.
//
//	v, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(), func() (int, error) {
//		return attemptUpdate()
//	})
package resilience
