package subject

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/reactive"
	"github.com/dmitrymomot/reactive/pkg/immutable"
)

// Subject is a concurrent multicast hub: values, a terminal error, or
// completion pushed from any goroutine are fanned out to every observer
// subscribed at that moment. See the package documentation for the full
// behavioral contract.
//
// All methods are safe for concurrent use. The zero value is not usable;
// create subjects with New.
type Subject[T any] struct {
	cell   cell[T]
	logger *slog.Logger
	mutex  bool
}

// Option configures a Subject.
type Option[T any] func(*Subject[T])

// WithLogger configures structured logging for subscription churn and
// terminal transitions. Logging is discarded by default.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(s *Subject[T]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMutexState selects the mutex-guarded state cell instead of the default
// lock-free one. Behavior is identical; the option exists for environments
// where lock-based synchronization is easier to reason about or audit.
func WithMutexState[T any]() Option[T] {
	return func(s *Subject[T]) {
		s.mutex = true
	}
}

// New creates a live Subject with no observers.
//
// Example:
//
//	subj := subject.New[string](
//		subject.WithLogger[string](logger),
//	)
//	defer subj.Dispose()
func New[T any](opts ...Option[T]) *Subject[T] {
	s := &Subject[T]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(slog.String("subject_id", uuid.NewString()))

	initial := &state[T]{kind: kindEmpty}
	if s.mutex {
		s.cell = newMutexCell(initial)
	} else {
		s.cell = newAtomicCell(initial)
	}

	return s
}

// Next delivers value to every currently subscribed observer, in
// subscription order. It never changes the subject's state: before the first
// subscriber and after a terminal signal or disposal it is a no-op.
func (s *Subject[T]) Next(value T) {
	cur := s.cell.load()
	switch cur.kind {
	case kindSingle:
		cur.single.observer.OnNext(value)
	case kindMany:
		for _, n := range cur.many.All() {
			n.observer.OnNext(value)
		}
	}
}

// Error moves the subject to the errored state and delivers err to every
// observer that was subscribed, exactly once each. The first terminal signal
// wins: if the subject already completed, errored, or was disposed, the call
// is silently dropped. A nil err is a contract violation and is rejected
// with ErrNilError before any state change.
func (s *Subject[T]) Error(err error) error {
	if err == nil {
		return ErrNilError
	}
	s.terminate(&state[T]{kind: kindErrored, err: err})
	return nil
}

// Complete moves the subject to the completed state and notifies every
// subscribed observer exactly once. Like Error, it is silently dropped when
// a terminal signal already won.
func (s *Subject[T]) Complete() {
	s.terminate(&state[T]{kind: kindCompleted})
}

func (s *Subject[T]) terminate(terminal *state[T]) {
	for {
		old := s.cell.load()
		if old.terminal() {
			return
		}
		if !s.cell.compareAndSwap(old, terminal) {
			continue
		}

		switch old.kind {
		case kindSingle:
			notifyTerminal(old.single, terminal)
		case kindMany:
			for _, n := range old.many.All() {
				notifyTerminal(n, terminal)
			}
		}

		if terminal.kind == kindErrored {
			s.logger.Debug("subject errored", slog.String("error", terminal.err.Error()))
		} else {
			s.logger.Debug("subject completed")
		}
		return
	}
}

func notifyTerminal[T any](n *node[T], terminal *state[T]) {
	if terminal.kind == kindErrored {
		n.observer.OnError(terminal.err)
	} else {
		n.observer.OnComplete()
	}
}

// Subscribe registers observer for all future notifications and returns a
// handle that detaches it again. If the subject already terminated, the
// terminal signal is replayed to observer synchronously and an inert handle
// is returned. Subscribing to a disposed subject fails with ErrDisposed; a
// nil observer fails with ErrNilObserver.
func (s *Subject[T]) Subscribe(observer reactive.Observer[T]) (reactive.Subscription, error) {
	if observer == nil {
		return nil, ErrNilObserver
	}

	n := &node[T]{observer: observer}
	for {
		old := s.cell.load()

		var next *state[T]
		switch old.kind {
		case kindDisposed:
			return nil, ErrDisposed
		case kindCompleted:
			observer.OnComplete()
			return inertSubscription{}, nil
		case kindErrored:
			observer.OnError(old.err)
			return inertSubscription{}, nil
		case kindEmpty:
			next = &state[T]{kind: kindSingle, single: n}
		case kindSingle:
			next = &state[T]{kind: kindMany, many: immutable.New(old.single, n)}
		case kindMany:
			next = &state[T]{kind: kindMany, many: old.many.Append(n)}
		}

		if s.cell.compareAndSwap(old, next) {
			s.logger.Debug("observer subscribed")
			return newSubscription(s, n), nil
		}
	}
}

// unsubscribe detaches n from the live subscriber set. Stale nodes, terminal
// states, and disposal are all silent no-ops: handles are released from
// arbitrary, possibly overlapping shutdown paths.
func (s *Subject[T]) unsubscribe(n *node[T]) {
	for {
		old := s.cell.load()

		var next *state[T]
		switch old.kind {
		case kindSingle:
			if old.single != n {
				return
			}
			next = &state[T]{kind: kindEmpty}
		case kindMany:
			if !old.many.Contains(n) {
				return
			}
			// The set stays kindMany even when it shrinks to 0 or 1; nothing
			// observable depends on collapsing it back.
			next = &state[T]{kind: kindMany, many: old.many.Remove(n)}
		default:
			return
		}

		if s.cell.compareAndSwap(old, next) {
			s.logger.Debug("observer unsubscribed")
			return
		}
	}
}

// Dispose permanently retires the subject. It is a hard stop, not a terminal
// notification: existing observers are dropped without being notified.
// Dispose is an unconditional store, so it wins over any transition racing
// with it; concurrent callers observe either the pre- or post-dispose state
// consistently.
func (s *Subject[T]) Dispose() {
	s.cell.store(&state[T]{kind: kindDisposed})
	s.logger.Debug("subject disposed")
}

// HasObservers reports whether at least one observer is currently subscribed.
func (s *Subject[T]) HasObservers() bool {
	cur := s.cell.load()
	switch cur.kind {
	case kindSingle:
		return true
	case kindMany:
		return cur.many.Len() > 0
	}
	return false
}

// IsDisposed reports whether Dispose has been called.
func (s *Subject[T]) IsDisposed() bool {
	return s.cell.load().kind == kindDisposed
}
