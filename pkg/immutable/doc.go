// Package immutable provides persistent value types with structural sharing.
//
// The central type is List[T], an immutable ordered sequence backed by a
// fixed array per snapshot. Every mutation returns a new list and leaves the
// receiver untouched, so a goroutine holding a snapshot can iterate it
// without locks while concurrent writers build replacement snapshots.
//
// # Usage
//
//	a := immutable.New(1, 2)
//	b := a.Append(3)  // a is still [1 2], b is [1 2 3]
//	c := b.Remove(2)  // b is still [1 2 3], c is [1 3]
//
// Removing an element that is not present is a no-op, not an error:
//
//	d := c.Remove(42) // equivalent to c
//
// # Thread Safety
//
// A List value is safe to share across goroutines without synchronization
// because it never changes. Publishing a *new* snapshot to other goroutines
// still requires an atomic reference or equivalent happens-before edge; see
// core/subject for the intended usage pattern.
package immutable
