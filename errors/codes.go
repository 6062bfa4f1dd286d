package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Value errors
const (
	// ErrCodeInvalidValue indicates a validator rejected a candidate value.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
	// ErrCodeInvalidArgument indicates a helper received an argument it cannot work with.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidInput indicates a struct failed tag validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// State errors
const (
	// ErrCodeConflict indicates an optimistic update kept losing to other writers.
	ErrCodeConflict ErrorCode = "CONFLICT"
	// ErrCodeWatcherFailed indicates a watcher returned an error during notification.
	ErrCodeWatcherFailed ErrorCode = "WATCHER_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeConflict: true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
