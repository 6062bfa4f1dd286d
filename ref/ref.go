package ref

import (
	"context"
	"sync"

	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/logger"
	"github.com/kbukum/funkit/observability"
)

// Validator gates whether a candidate value may be committed.
type Validator[T any] func(T) bool

// Watcher observes committed transitions. key is the key the watcher was
// registered under.
type Watcher[T any] func(key string, oldValue, newValue T) error

// Observable is implemented by values that notify watchers of changes.
type Observable[T any] interface {
	AddWatch(key string, w Watcher[T]) string
	Watch(w Watcher[T]) string
	RemoveWatch(key string) (Watcher[T], bool)
	Notify(oldValue, newValue T) (int, error)
}

// Settable is implemented by values that can be read and written.
type Settable[T any] interface {
	Get() T
	SetValue(v T) (T, error)
	Swap(update func(T) T) (T, error)
	Snapshot() T
}

// CASCapable is implemented by values supporting compare-and-set.
type CASCapable[T any] interface {
	CompareAndSet(expected, newValue T) (bool, error)
}

// Cell combines all three capabilities.
type Cell[T any] interface {
	Observable[T]
	Settable[T]
	CASCapable[T]
}

var _ Cell[int] = (*Ref[int])(nil)

// Ref is an observable, validated, compare-and-set capable cell.
// The zero value is not usable; create one with New.
type Ref[T any] struct {
	mu       sync.Mutex
	value    T
	version  uint64
	watchers registry[T]
	pending  []change[T]
	draining bool

	name      string
	validator Validator[T]
	equal     func(a, b T) bool
	clone     func(T) T
	log       *logger.Logger
	metrics   *observability.Metrics
}

// Option configures a Ref.
type Option[T any] func(*Ref[T])

// WithValidator sets the validator every committed value must satisfy.
func WithValidator[T any](v Validator[T]) Option[T] {
	return func(r *Ref[T]) { r.validator = v }
}

// WithEqual replaces identity comparison in CompareAndSet.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(r *Ref[T]) { r.equal = eq }
}

// WithCloner replaces the shallow copy Snapshot returns.
func WithCloner[T any](clone func(T) T) Option[T] {
	return func(r *Ref[T]) { r.clone = clone }
}

// WithName names the cell in logs and metrics.
func WithName[T any](name string) Option[T] {
	return func(r *Ref[T]) { r.name = name }
}

// WithLogger sets the logger used for rejections and watcher failures.
func WithLogger[T any](l *logger.Logger) Option[T] {
	return func(r *Ref[T]) { r.log = l }
}

// WithMetrics reports commits, rejections, mismatches and notifications.
func WithMetrics[T any](m *observability.Metrics) Option[T] {
	return func(r *Ref[T]) { r.metrics = m }
}

// New creates a Ref holding initial. The initial value is not validated.
func New[T any](initial T, opts ...Option[T]) *Ref[T] {
	r := &Ref[T]{
		value:    initial,
		name:     "ref",
		equal:    identical[T],
		clone:    shallowClone[T],
		log:      logger.Nop(),
		watchers: newRegistry[T](),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent(r.name)
	return r
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// SetValue validates and commits v, then notifies watchers. It returns v.
func (r *Ref[T]) SetValue(v T) (T, error) {
	r.mu.Lock()
	seq, err := r.commitLocked(v)
	r.mu.Unlock()
	if err != nil {
		var zero T
		return zero, err
	}
	return v, r.deliver(seq)
}

// Swap commits update(current). The update runs against the value it
// replaces: if another goroutine commits in between, update runs again on
// the newer value. Without contention update runs exactly once.
func (r *Ref[T]) Swap(update func(T) T) (T, error) {
	for {
		current, version := r.read()
		next := update(current)

		seq, committed, err := r.commitIfVersion(version, next)
		if err != nil {
			var zero T
			return zero, err
		}
		if committed {
			return next, r.deliver(seq)
		}
	}
}

// SwapArgs is Swap with extra arguments passed through to update.
func SwapArgs[T, A any](r *Ref[T], update func(T, ...A) T, args ...A) (T, error) {
	return r.Swap(func(current T) T {
		return update(current, args...)
	})
}

// Snapshot returns a copy of the current value that callers may mutate
// without affecting the cell.
func (r *Ref[T]) Snapshot() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clone(r.value)
}

// CompareAndSet commits newValue only if the current value is identical to
// expected. A mismatch returns false with no error, no commit and no
// notification. A match whose newValue fails validation returns false and
// the validation error.
func (r *Ref[T]) CompareAndSet(expected, newValue T) (bool, error) {
	r.mu.Lock()
	if !r.equal(r.value, expected) {
		r.mu.Unlock()
		r.metrics.RecordCASMismatch(context.Background(), r.name)
		return false, nil
	}
	seq, err := r.commitLocked(newValue)
	r.mu.Unlock()
	if err != nil {
		return false, err
	}
	return true, r.deliver(seq)
}

func (r *Ref[T]) read() (T, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value, r.version
}

func (r *Ref[T]) commitIfVersion(version uint64, v T) (seq uint64, committed bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.version != version {
		return 0, false, nil
	}
	seq, err = r.commitLocked(v)
	return seq, err == nil, err
}

// commitLocked must be called with r.mu held. A committed value is queued
// for delivery and its version returned.
func (r *Ref[T]) commitLocked(v T) (uint64, error) {
	if r.validator != nil && !r.validator(v) {
		r.log.Debug("value rejected", logger.Fields(logger.FieldNew, v))
		r.metrics.RecordRejection(context.Background(), r.name)
		return 0, errors.InvalidValue(v)
	}
	old := r.value
	r.value = v
	r.version++
	r.pending = append(r.pending, change[T]{seq: r.version, oldValue: old, newValue: v})
	r.metrics.RecordCommit(context.Background(), r.name)
	return r.version, nil
}

// IsValidationError reports whether err is a validator rejection.
func IsValidationError(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidValue)
}
