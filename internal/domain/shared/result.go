package shared

import (
	domainerrors "users/internal/domain/errors"
	"users/internal/errors"
)

// Result is the outcome of a guarded construction: either a value or an error,
// never both. Callers branch on Succeeded before touching Value.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok wraps value in a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail wraps err in a failed Result. A nil err is replaced with
// ErrValidationFailed so a failure is never mistaken for success.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = domainerrors.ErrValidationFailed
	}

	return Result[T]{err: err}
}

// Succeeded reports whether the Result carries a value.
func (r Result[T]) Succeeded() bool {
	return r.ok
}

// Failed reports whether the Result carries an error.
func (r Result[T]) Failed() bool {
	return !r.ok
}

// Value returns the wrapped value.
// Calling it on a failed Result is a programming error and panics with an
// error matching domainerrors.ErrInvalidResultAccess.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(errors.WithStack(domainerrors.ErrInvalidResultAccess.WithCause(r.err)))
	}

	return r.value
}

// Err returns the failure reason, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the value and error as a Go tuple. It never panics; the
// value is the zero value on failure.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}
