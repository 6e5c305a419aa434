package subject

import "errors"

var (
	// ErrDisposed is returned by Subscribe after the subject has been disposed.
	ErrDisposed = errors.New("subject is disposed")

	// ErrNilObserver is returned by Subscribe when the observer is nil.
	ErrNilObserver = errors.New("observer must not be nil")

	// ErrNilError is returned by Error when the terminal error is nil.
	ErrNilError = errors.New("terminal error must not be nil")
)
