package ref

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/kbukum/funkit/errors"
	"github.com/kbukum/funkit/logger"
)

type registration[T any] struct {
	key string
	fn  Watcher[T]
}

// registry keeps watchers by key in registration order. Replacing a key
// keeps its original position.
type registry[T any] struct {
	watchers map[string]Watcher[T]
	order    []string
}

func newRegistry[T any]() registry[T] {
	return registry[T]{watchers: make(map[string]Watcher[T])}
}

func (g *registry[T]) add(key string, w Watcher[T]) {
	if _, exists := g.watchers[key]; !exists {
		g.order = append(g.order, key)
	}
	g.watchers[key] = w
}

func (g *registry[T]) remove(key string) (Watcher[T], bool) {
	w, ok := g.watchers[key]
	if !ok {
		return nil, false
	}
	delete(g.watchers, key)
	g.order = lo.Without(g.order, key)
	return w, true
}

func (g *registry[T]) list() []registration[T] {
	return lo.Map(g.order, func(key string, _ int) registration[T] {
		return registration[T]{key: key, fn: g.watchers[key]}
	})
}

// AddWatch registers w under key, replacing any watcher already there.
// An empty key is replaced by a generated one. It returns the key.
func (r *Ref[T]) AddWatch(key string, w Watcher[T]) string {
	if key == "" {
		key = uuid.NewString()
	}
	r.mu.Lock()
	r.watchers.add(key, w)
	r.mu.Unlock()
	return key
}

// Watch registers w under a generated key and returns it.
func (r *Ref[T]) Watch(w Watcher[T]) string {
	return r.AddWatch("", w)
}

// RemoveWatch unregisters and returns the watcher under key. The boolean is
// false if no watcher was registered there.
func (r *Ref[T]) RemoveWatch(key string) (Watcher[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watchers.remove(key)
}

// Notify calls every registered watcher with the transition and returns how
// many were called. The first watcher error stops the pass and is returned
// wrapped as WATCHER_FAILED.
func (r *Ref[T]) Notify(oldValue, newValue T) (int, error) {
	r.mu.Lock()
	watchers := r.watchers.list()
	r.mu.Unlock()
	return r.notify(watchers, oldValue, newValue)
}

func (r *Ref[T]) notify(watchers []registration[T], oldValue, newValue T) (int, error) {
	notified := 0
	defer func() {
		r.metrics.RecordNotifications(context.Background(), r.name, notified)
	}()

	for _, w := range watchers {
		if w.fn == nil {
			continue
		}
		notified++
		if err := w.fn(w.key, oldValue, newValue); err != nil {
			r.log.Warn("watcher failed", logger.MergeWithError(logger.Fields(logger.FieldKey, w.key), err))
			return notified, errors.WatcherFailed(w.key, err)
		}
	}
	return notified, nil
}

// change is a committed transition waiting to be delivered.
type change[T any] struct {
	seq      uint64
	oldValue T
	newValue T
}

// deliver drains the queue of committed transitions in commit order. Only
// one goroutine drains at a time; a writer that finds the queue already
// draining leaves its transition to that goroutine and returns at once, which
// is also what happens when a watcher writes to the cell it is watching.
// The error returned is the watcher failure for the transition committed as
// seq, if this goroutine delivered it. Failures of other transitions are
// logged.
func (r *Ref[T]) deliver(seq uint64) (err error) {
	r.mu.Lock()
	if r.draining {
		r.mu.Unlock()
		return nil
	}
	r.draining = true

	locked := true
	defer func() {
		if !locked {
			r.mu.Lock()
		}
		r.draining = false
		r.mu.Unlock()
	}()

	for len(r.pending) > 0 {
		c := r.pending[0]
		r.pending = r.pending[1:]
		watchers := r.watchers.list()

		locked = false
		r.mu.Unlock()
		n, notifyErr := r.notify(watchers, c.oldValue, c.newValue)
		r.mu.Lock()
		locked = true

		if notifyErr != nil {
			if c.seq == seq {
				err = notifyErr
			}
			continue
		}
		fields := logger.TransitionFields(c.oldValue, c.newValue)
		fields[logger.FieldWatchers] = n
		r.log.Debug("value committed", fields)
	}
	r.pending = nil
	return err
}
