// Package fatal implements a hard failure primitive in the style of Rust's
// panic!(). It is the terminal escape hatch for programmer errors and broken
// invariants, not a channel for recoverable failures (use res.Result for those).
//
// Highlights:
// - Panic/Panicf: write a structured report to stderr and exit with status 1
// - The report carries the goroutine id, the message, the call site and a
//   stack backtrace rendered from the outermost frame inward
// - Report writing is serialized, so concurrent goroutines cannot interleave
//   their reports
package fatal
