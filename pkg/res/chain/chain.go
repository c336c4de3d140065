package chain

import "github.com/ib-77/res/pkg/res"

// Chain wraps a res.Result to enable fluent composition. Chains are values;
// every step returns a new Chain and never mutates the previous one.
type Chain[T, E any] struct {
	r res.Result[T, E]
}

// Start opens a chain from an existing Result.
func Start[T, E any](r res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{r: r}
}

// FromValue opens a chain from a successful value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Chain[T, E]{r: res.Success[T, E](v)}
}

// Result closes the chain and returns the underlying Result.
func (c Chain[T, E]) Result() res.Result[T, E] {
	return c.r
}

// Then composes a function that returns res.Result. A Failure already in the
// chain short-circuits; fn is not invoked.
func (c Chain[T, E]) Then(fn func(T) res.Result[T, E]) Chain[T, E] {
	v, ok := c.r.Value()
	if !ok {
		return c
	}
	return Chain[T, E]{r: fn(v)}
}

// Map transforms the success value in place.
func (c Chain[T, E]) Map(fn func(T) T) Chain[T, E] {
	v, ok := c.r.Value()
	if !ok {
		return c
	}
	return Chain[T, E]{r: res.Success[T, E](fn(v))}
}

// Tee runs a side effect on the success value and passes the chain through
// unchanged.
func (c Chain[T, E]) Tee(fn func(T)) Chain[T, E] {
	if v, ok := c.r.Value(); ok {
		fn(v)
	}
	return c
}

// TeeFailure runs a side effect on the failure value and passes the chain
// through unchanged.
func (c Chain[T, E]) TeeFailure(fn func(E)) Chain[T, E] {
	if e, ok := c.r.FailureValue(); ok {
		fn(e)
	}
	return c
}

// Or keeps the current chain when it is a Success, otherwise switches to alt.
func (c Chain[T, E]) Or(alt Chain[T, E]) Chain[T, E] {
	if c.r.IsSuccess() {
		return c
	}
	return alt
}

// OrElse recovers from a Failure by computing an alternative Result from the
// failure value.
func (c Chain[T, E]) OrElse(fn func(E) res.Result[T, E]) Chain[T, E] {
	e, ok := c.r.FailureValue()
	if !ok {
		return c
	}
	return Chain[T, E]{r: fn(e)}
}
