// Package subject provides a concurrent multicast broadcast hub: a single
// producer-facing surface that fans every notification out to a dynamically
// changing set of observers, with exactly-once terminal delivery and safe,
// idempotent unsubscription.
//
// # Core Type
//
// Subject[T] accepts values, a terminal error, or completion from any
// goroutine and delivers them to every observer subscribed at that instant.
// It is not a replay buffer: only the terminal signal is remembered, never
// prior values, so a late subscriber receives exactly the terminal
// notification and nothing else.
//
// # Usage
//
//	subj := subject.New[int]()
//	defer subj.Dispose()
//
//	sub, err := subj.Subscribe(reactive.NewObserver[int](
//		func(v int) { fmt.Println("got", v) },
//		func(err error) { fmt.Println("failed:", err) },
//		func() { fmt.Println("done") },
//	))
//	if err != nil {
//		// subject was already disposed
//	}
//	defer sub.Unsubscribe()
//
//	subj.Next(1)
//	subj.Next(2)
//	subj.Complete()
//
// # State Machine
//
// The subject holds a single subscriber-state value, one of: no observers,
// one observer, an immutable snapshot of many observers, completed, errored,
// or disposed. Every operation replaces that value wholesale; terminal and
// disposed states are absorbing. Because publishing reads whatever state is
// current and transitions swap complete immutable values, a publish racing a
// subscribe or unsubscribe always sees a consistent snapshot.
//
// Guarantees:
//   - Values are delivered to each observer in publish order.
//   - Exactly one terminal notification reaches any given observer: either it
//     was in the snapshot the winning terminal publish captured, or it
//     subscribed later and got an immediate synchronous replay.
//   - A second Complete or Error is silently dropped, making racy teardown
//     code safe to write without coordination.
//   - Unsubscribe is idempotent and never fails; a stale handle is a no-op.
//
// # Synchronization Strategies
//
// The default subject is lock-free: the state lives in an atomic reference
// and transitions retry on compare-and-swap failure. WithMutexState selects
// an equivalent mutex-guarded cell instead; both strategies satisfy the same
// behavioral contract and the package test suite runs against both.
//
// # Disposal
//
// Dispose is a hard stop, distinct from completion: it does not notify
// existing observers. After disposal Subscribe fails with ErrDisposed, while
// stray Next/Error/Complete and Unsubscribe calls are silent no-ops.
//
// # Logging
//
// Subscription churn and terminal transitions are logged at debug level.
// Logging is disabled by default; pass a logger to observe a subject:
//
//	subj := subject.New[int](subject.WithLogger[int](logger))
package subject
