package internal

import "github.com/pkg/errors"

// Threading errors up and down every nested decoding helper would add a lot of
// noise to the code. Instead, helpers panic with Fatalf, and the public API
// recovers to convert the panic to an error.

// The wrapper keeps runtime errors, which are also errors, from being mistaken
// for decoding failures.
type DecodeError struct {
	error
}

// Panic with a DecodeError.
func Fatalf(format string, args ...interface{}) {
	panic(DecodeError{errors.Errorf(format, args...)})
}

// Panic with a DecodeError that wraps err with a message.
func Wrapf(err error, format string, args ...interface{}) {
	panic(DecodeError{errors.Wrapf(err, format, args...)})
}

// Call in a deferred function with the result of recover(). Returns the error
// for a DecodeError panic, re-panics for anything else, and returns nil if
// there was no panic at all.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if decodeError, ok := r.(DecodeError); ok {
			return decodeError.error
		}
		panic(r)
	}
	return nil
}
