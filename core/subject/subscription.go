package subject

import "sync/atomic"

// subscription is the live handle returned from Subscribe. Unsubscribe
// atomically takes and clears the node reference, so double release from
// racing goroutines detaches the observer exactly once. The subject
// back-reference is cleared after detachment so a forgotten handle does not
// retain the subject.
type subscription[T any] struct {
	subject atomic.Pointer[Subject[T]]
	node    atomic.Pointer[node[T]]
}

func newSubscription[T any](s *Subject[T], n *node[T]) *subscription[T] {
	sub := &subscription[T]{}
	sub.subject.Store(s)
	sub.node.Store(n)
	return sub
}

func (s *subscription[T]) Unsubscribe() {
	n := s.node.Swap(nil)
	if n == nil {
		return
	}
	if subj := s.subject.Swap(nil); subj != nil {
		subj.unsubscribe(n)
	}
}

// inertSubscription is handed out when Subscribe replays a terminal signal:
// there is nothing to detach, so Unsubscribe does nothing.
type inertSubscription struct{}

func (inertSubscription) Unsubscribe() {}
