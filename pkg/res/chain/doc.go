// Package chain provides a fluent, synchronous builder over res.Result for
// composing several fallible steps without intermediate branching. The first
// Failure short-circuits every following step.
//
// Highlights:
// - Start/FromValue: open a chain from a Result or a plain value
// - Then: compose functions returning res.Result
// - Map: transform the success value in place
// - Tee/TeeFailure: run side effects without altering the chain
// - Or/OrElse: recover from a Failure with an alternative
// - Result: close the chain and hand back the res.Result
package chain
