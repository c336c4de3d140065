// Package res provides a closed, two-variant Result[T, E] in the style of
// Rust's std::result. A Result is always exactly one of Success(value) or
// Failure(failure); callers branch on it explicitly instead of relying on
// sentinel values or recover.
//
// Highlights:
// - Success/Failure/From: construct Result[T, E]
// - IsSuccess/IsFailure (+ the ...And variants): inspect the variant
// - Value/FailureValue: extract with a comma-ok absence marker
// - Unwrap/UnwrapFailure/Expect/ExpectFailure: extract or abort via fatal.Panic
// - UnwrapOr/UnwrapOrElse: extract with a fallback
// - Map/MapFailure/AndThen/Flatten: transform without mutating the original
// - Wrap/WrapResult (arities 0..2): adapt (T, error) and panicking functions
//   into Result-returning ones
//
// Misusing the extracting operations (Unwrap on a Failure, UnwrapFailure on a
// Success) is a programmer error: it terminates the process with a full
// report. Recoverable failures must stay on the Failure path.
package res
