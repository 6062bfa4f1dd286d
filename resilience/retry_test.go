package resilience

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/funkit/errors"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
		BackoffFactor:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), DefaultRetryConfig(), func() (string, error) {
		calls++
		return "committed", nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "committed" {
		t.Errorf("expected 'committed', got %s", result)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestRetry_RetriesConflicts(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), fastConfig(5), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.Conflict("value changed")
		}
		return 42, nil
	})

	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != 42 {
		t.Errorf("expected 42, got %d", result)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastConfig(5), func() (int, error) {
		calls++
		return 0, errors.InvalidValue(-1)
	})

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidValue) {
		t.Errorf("expected INVALID_VALUE, got %v", err)
	}
}

func TestRetry_ExceedsMaxAttempts(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastConfig(3), func() (int, error) {
		calls++
		return 0, errors.Conflict("still contended")
	})

	if !errors.HasCode(err, errors.ErrCodeConflict) {
		t.Errorf("expected CONFLICT, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_RespectsContext(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:    10,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		BackoffFactor:  2.0,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	calls := 0
	_, err := Retry(ctx, cfg, func() (int, error) {
		calls++
		return 0, errors.Conflict("contended")
	})

	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if calls >= 10 {
		t.Errorf("expected fewer than 10 calls, got %d", calls)
	}
}

func TestRetry_CustomRetryIf(t *testing.T) {
	transient := stderrors.New("transient")
	cfg := fastConfig(3)
	cfg.RetryIf = func(err error) bool { return stderrors.Is(err, transient) }

	calls := 0
	_, _ = Retry(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, transient
	})
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_OnRetryCallback(t *testing.T) {
	var attempts []int
	cfg := fastConfig(3)
	cfg.OnRetry = func(attempt int, err error, backoff time.Duration) {
		attempts = append(attempts, attempt)
	}

	_, _ = Retry(context.Background(), cfg, func() (int, error) {
		return 0, errors.Conflict("contended")
	})

	if len(attempts) != 2 || attempts[0] != 1 || attempts[1] != 2 {
		t.Errorf("expected attempts [1 2], got %v", attempts)
	}
}

func TestRetryIfRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"conflict", errors.Conflict("x"), true},
		{"invalid value", errors.InvalidValue(1), false},
		{"plain error", stderrors.New("boom"), false},
		{"canceled", context.Canceled, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RetryIfRetryable(tc.err); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	cfg := RetryConfig{
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
		BackoffFactor:  2.0,
	}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 10 * time.Millisecond},
		{2, 20 * time.Millisecond},
		{3, 40 * time.Millisecond},
		{4, 50 * time.Millisecond},
		{5, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := calculateBackoff(tt.attempt, cfg); got != tt.expected {
			t.Errorf("attempt %d: expected %v, got %v", tt.attempt, tt.expected, got)
		}
	}
}
