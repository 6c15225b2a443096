package internal

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandlePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandlePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			Fatalf("kaboom at %d", 3)
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom at 3")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandlePanicRecover(recover())
			}()
			var points []int
			_ = points[3]
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := func() (err error) {
			defer func() {
				err = HandlePanicRecover(recover())
			}()
			Wrapf(io.ErrUnexpectedEOF, "reading %s", "scene")
			return nil
		}()
		assert.EqualError(t, err, "reading scene: unexpected EOF")
		assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))
	})
}
