package res

import "fmt"

// PanicError carries a recovered panic payload that was not itself an error.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// recovered converts a recover() payload into an error, keeping error
// payloads as they are.
func recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// Wrap adapts a conventional fallible function into a Result-returning one.
// A returned error becomes a Failure, a panic raised by fn is recovered into
// a Failure (errors kept as is, other payloads wrapped in PanicError), and a
// normal return becomes a Success.
//
// Wrap must not be applied to a function that already returns a Result; that
// double-wraps the value. Use WrapResult for those.
func Wrap[T any](fn func() (T, error)) func() Result[T, error] {
	return func() (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return From(fn())
	}
}

// Wrap1 is Wrap for single-argument functions.
func Wrap1[A, T any](fn func(A) (T, error)) func(A) Result[T, error] {
	return func(a A) (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return From(fn(a))
	}
}

// Wrap2 is Wrap for two-argument functions.
func Wrap2[A, B, T any](fn func(A, B) (T, error)) func(A, B) Result[T, error] {
	return func(a A, b B) (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return From(fn(a, b))
	}
}

// WrapResult adapts a function that already returns a Result. A returned
// Result passes through unchanged; only a panic raised by fn instead of a
// normal return is recovered into a Failure.
func WrapResult[T any](fn func() Result[T, error]) func() Result[T, error] {
	return func() (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return fn()
	}
}

// WrapResult1 is WrapResult for single-argument functions.
func WrapResult1[A, T any](fn func(A) Result[T, error]) func(A) Result[T, error] {
	return func(a A) (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return fn(a)
	}
}

// WrapResult2 is WrapResult for two-argument functions.
func WrapResult2[A, B, T any](fn func(A, B) Result[T, error]) func(A, B) Result[T, error] {
	return func(a A, b B) (r Result[T, error]) {
		defer func() {
			if v := recover(); v != nil {
				r = Failure[T, error](recovered(v))
			}
		}()
		return fn(a, b)
	}
}
