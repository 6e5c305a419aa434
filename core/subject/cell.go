package subject

import (
	"sync"
	"sync/atomic"
)

// atomicCell is the lock-free strategy: the state lives in an atomic pointer
// and contended transitions retry in the caller's compare-and-swap loop.
type atomicCell[T any] struct {
	ref atomic.Pointer[state[T]]
}

func newAtomicCell[T any](initial *state[T]) *atomicCell[T] {
	c := &atomicCell[T]{}
	c.ref.Store(initial)
	return c
}

func (c *atomicCell[T]) load() *state[T] {
	return c.ref.Load()
}

func (c *atomicCell[T]) compareAndSwap(old, new *state[T]) bool {
	return c.ref.CompareAndSwap(old, new)
}

func (c *atomicCell[T]) store(s *state[T]) {
	c.ref.Store(s)
}

// mutexCell is the fallback strategy: a plain pointer guarded by a mutex.
// Each method is a minimal critical section, so callers run the same
// transition algorithm as with atomicCell and observe identical behavior.
type mutexCell[T any] struct {
	mu  sync.Mutex
	cur *state[T]
}

func newMutexCell[T any](initial *state[T]) *mutexCell[T] {
	return &mutexCell[T]{cur: initial}
}

func (c *mutexCell[T]) load() *state[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

func (c *mutexCell[T]) compareAndSwap(old, new *state[T]) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cur != old {
		return false
	}
	c.cur = new
	return true
}

func (c *mutexCell[T]) store(s *state[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = s
}
