package reactive

// Observer is a consumer capability accepting next-value, error, and
// completion notifications. Implementations must tolerate concurrent calls:
// a hub fans notifications out from whichever goroutine published them and
// does not serialize calls into a given observer.
type Observer[T any] interface {
	// OnNext delivers the next value in the sequence.
	OnNext(value T)

	// OnError delivers the terminal error. No further notifications follow.
	OnError(err error)

	// OnComplete signals normal termination. No further notifications follow.
	OnComplete()
}

// funcObserver adapts plain functions to the Observer interface.
type funcObserver[T any] struct {
	onNext     func(T)
	onError    func(error)
	onComplete func()
}

// NewObserver adapts the given callbacks into an Observer. Any nil callback
// becomes a no-op, so callers only wire the notifications they care about:
//
//	observer := reactive.NewObserver[int](func(v int) {
//		process(v)
//	}, nil, nil)
func NewObserver[T any](onNext func(T), onError func(error), onComplete func()) Observer[T] {
	return &funcObserver[T]{
		onNext:     onNext,
		onError:    onError,
		onComplete: onComplete,
	}
}

func (o *funcObserver[T]) OnNext(value T) {
	if o.onNext != nil {
		o.onNext(value)
	}
}

func (o *funcObserver[T]) OnError(err error) {
	if o.onError != nil {
		o.onError(err)
	}
}

func (o *funcObserver[T]) OnComplete() {
	if o.onComplete != nil {
		o.onComplete()
	}
}
