package immutable

// List is an immutable ordered sequence with copy-on-write semantics.
// The zero value is a valid empty list.
type List[T comparable] struct {
	items []T
}

// New creates a list holding the given items in order.
func New[T comparable](items ...T) List[T] {
	if len(items) == 0 {
		return List[T]{}
	}
	// Copy so the caller's slice cannot mutate the snapshot later.
	snapshot := make([]T, len(items))
	copy(snapshot, items)
	return List[T]{items: snapshot}
}

// Append returns a new list with v added at the end. The receiver is unchanged.
func (l List[T]) Append(v T) List[T] {
	next := make([]T, len(l.items)+1)
	copy(next, l.items)
	next[len(l.items)] = v
	return List[T]{items: next}
}

// Remove returns a new list with the first element equal to v excluded.
// If v is not present the receiver is returned unchanged.
func (l List[T]) Remove(v T) List[T] {
	idx := -1
	for i, item := range l.items {
		if item == v {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l
	}
	if len(l.items) == 1 {
		return List[T]{}
	}
	next := make([]T, 0, len(l.items)-1)
	next = append(next, l.items[:idx]...)
	next = append(next, l.items[idx+1:]...)
	return List[T]{items: next}
}

// Contains reports whether v is an element of the list.
func (l List[T]) Contains(v T) bool {
	for _, item := range l.items {
		if item == v {
			return true
		}
	}
	return false
}

// Len returns the number of elements in the list.
func (l List[T]) Len() int {
	return len(l.items)
}

// All returns the backing array of the snapshot in insertion order. The
// returned slice is shared with the list and must not be modified.
func (l List[T]) All() []T {
	return l.items
}
