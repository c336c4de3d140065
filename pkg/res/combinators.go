package res

// Map transforms the success value with fn, leaving a Failure untouched
// (fn is never invoked on a Failure). Go methods cannot introduce type
// parameters, so the type-changing combinators live at package level.
func Map[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Success[U, E](fn(r.value))
	}
	return Failure[U, E](r.failure)
}

// MapFailure transforms the failure value with fn, leaving a Success
// untouched (fn is never invoked on a Success).
func MapFailure[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if !r.ok {
		return Failure[T, F](fn(r.failure))
	}
	return Success[T, F](r.value)
}

// AndThen chains a Result-returning continuation onto a Success, propagating
// a Failure unchanged.
func AndThen[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Failure[U, E](r.failure)
}

// Flatten collapses a nested Result: the inner Result of a Success is
// returned as is, a Failure stays a Failure.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.ok {
		return r.value
	}
	return Failure[T, E](r.failure)
}
