package reactive

// Subscription represents an observer's membership in a stream. It is a
// one-shot capability: the first Unsubscribe call detaches the observer,
// subsequent calls are no-ops. Safe to call from any goroutine, any number
// of times.
type Subscription interface {
	Unsubscribe()
}
