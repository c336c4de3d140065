package res

import (
	"fmt"
	"reflect"

	"github.com/ib-77/res/pkg/fatal"
)

// Result holds the outcome of an operation that can fail in an expected way:
// exactly one of a success value of type T or a failure value of type E.
// The zero Result is a Failure holding E's zero value. Results are immutable;
// every operation uses a value receiver and returns fresh values.
//
// For comparable T and E the == operator matches Equal, because the inactive
// field always holds its zero value.
type Result[T, E any] struct {
	value   T
	failure E
	ok      bool
}

// Success wraps v as a successful Result.
func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Failure wraps e as a failed Result.
func Failure[T, E any](e E) Result[T, E] {
	return Result[T, E]{failure: e}
}

// From lifts a conventional (value, error) pair into a Result at the point
// where success or failure is detected.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// IsSuccess reports whether the Result is a Success.
func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

// IsSuccessAnd reports whether the Result is a Success holding v.
func (r Result[T, E]) IsSuccessAnd(v T) bool {
	return r.ok && reflect.DeepEqual(r.value, v)
}

// IsFailure reports whether the Result is a Failure.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// IsFailureAnd reports whether the Result is a Failure holding e.
func (r Result[T, E]) IsFailureAnd(e E) bool {
	return !r.ok && reflect.DeepEqual(r.failure, e)
}

// Value returns the success value, with ok false when the Result is a Failure.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// FailureValue returns the failure value, with ok false when the Result is a
// Success.
func (r Result[T, E]) FailureValue() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.failure, true
}

// Unwrap returns the success value. Calling it on a Failure is a programmer
// error and terminates the process via fatal.Panic, naming the failure value.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		fatal.Panicf("called Unwrap on a Failure value: %v", r.failure)
	}
	return r.value
}

// UnwrapFailure returns the failure value. Calling it on a Success is a
// programmer error and terminates the process via fatal.Panic, naming the
// success value.
func (r Result[T, E]) UnwrapFailure() E {
	if r.ok {
		fatal.Panicf("called UnwrapFailure on a Success value: %v", r.value)
	}
	return r.failure
}

// UnwrapOr returns the success value, or def when the Result is a Failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or computes one from the failure
// value. fn runs synchronously; any panic it raises propagates to the caller.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.failure)
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied message prefixed to the report.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		fatal.Panicf("%s: %v", msg, r.failure)
	}
	return r.value
}

// ExpectFailure is UnwrapFailure with a caller-supplied message prefixed to
// the report.
func (r Result[T, E]) ExpectFailure(msg string) E {
	if r.ok {
		fatal.Panicf("%s: %v", msg, r.value)
	}
	return r.failure
}

// Equal reports whether both Results are the same variant holding equal
// values. Values compare via reflect.DeepEqual, so non-comparable payloads
// (slices, maps) are supported.
func (r Result[T, E]) Equal(o Result[T, E]) bool {
	if r.ok != o.ok {
		return false
	}
	if r.ok {
		return reflect.DeepEqual(r.value, o.value)
	}
	return reflect.DeepEqual(r.failure, o.failure)
}

// String renders the Result as Success(v) or Failure(e).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.failure)
}
