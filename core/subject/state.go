package subject

import (
	"github.com/dmitrymomot/reactive"
	"github.com/dmitrymomot/reactive/pkg/immutable"
)

// node wraps a subscribed observer so that membership is tracked by pointer
// identity. Two subscriptions of the same observer value get distinct nodes,
// and removal never depends on the observer's dynamic type being comparable.
type node[T any] struct {
	observer reactive.Observer[T]
}

type stateKind uint8

const (
	kindEmpty stateKind = iota
	kindSingle
	kindMany
	kindCompleted
	kindErrored
	kindDisposed
)

// state is the subscriber state of a subject: an immutable tagged variant.
// Exactly one of the payload fields is meaningful, selected by kind.
// Transitions allocate a fresh state and swap the subject's cell wholesale;
// a state value is never mutated after publication.
type state[T any] struct {
	kind   stateKind
	single *node[T]                 // kindSingle
	many   immutable.List[*node[T]] // kindMany
	err    error                    // kindErrored
}

// terminal reports whether the state is absorbing: terminal or disposed.
func (s *state[T]) terminal() bool {
	switch s.kind {
	case kindCompleted, kindErrored, kindDisposed:
		return true
	}
	return false
}

// cell is the single mutable reference holding a subject's current state.
// It is the only synchronization point in the package; the two
// implementations give the lock-free and mutex-based strategies the exact
// same transition algorithm.
type cell[T any] interface {
	load() *state[T]
	compareAndSwap(old, new *state[T]) bool
	store(s *state[T])
}
