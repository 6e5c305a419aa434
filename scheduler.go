package reactive

// CancelFunc revokes previously scheduled work. Calling it after the work
// has run, or calling it repeatedly, has no effect.
type CancelFunc func()

// Scheduler defers or sequences producer work. Producers layered on top of a
// hub use it to schedule their calls into the hub; the hub itself never
// touches a scheduler, so any implementation that runs the action at most
// once satisfies the contract.
type Scheduler interface {
	// Schedule arranges for action to run and returns a handle that cancels
	// the work if it has not started yet.
	Schedule(action func()) CancelFunc
}
