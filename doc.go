// Package reactive provides the core primitives for push-based event
// composition: producers emit a sequence of values followed by a single
// terminal completion or error signal, and observers subscribe to receive
// them. The library implements modern Go patterns including generics for
// type safety, functional options for configuration, and interface-based
// design for flexibility and testability.
//
// # Package Organization
//
//	github.com/dmitrymomot/reactive              - Observer, Subscription, and Scheduler contracts
//	github.com/dmitrymomot/reactive/core/subject - Concurrent multicast broadcast hub
//	github.com/dmitrymomot/reactive/pkg/immutable - Persistent snapshot list value type
//
// # Core Contracts
//
// Observer[T] is the consumer capability: it accepts next-value, error, and
// completion notifications. Implement it directly, or adapt plain functions
// with NewObserver:
//
//	observer := reactive.NewObserver(
//		func(v int) { fmt.Println("next:", v) },
//		func(err error) { fmt.Println("failed:", err) },
//		func() { fmt.Println("done") },
//	)
//
// Subscription is the one-shot capability returned from subscribing.
// Unsubscribe detaches the observer exactly once; further calls are no-ops,
// so it is always safe to call from overlapping shutdown paths.
//
// Scheduler is the shape of the external collaborator producers use to defer
// work. This package defines only the contract; concrete schedulers live with
// the producers that need them.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/reactive/core/subject
//	go doc -all github.com/dmitrymomot/reactive/pkg/immutable
package reactive
