// Package trampoline converts unbounded self-recursion into a bounded
// iterative loop.
//
// A recursive algorithm is rewritten so that, instead of calling itself,
// each step returns a [Step]: either a terminal value ([Done]) or a deferred
// continuation ([Call]). The driver [Run] unwraps steps in a plain loop, so
// the host call stack stays at constant depth no matter how many logical
// recursive steps occur.
//
// # Why not just recurse?
//
// Go does not perform tail-call elimination. A self-recursive fold over a
// large input grows one stack frame per element; goroutine stacks grow to
// accommodate it, but the cost is real and unbounded. Returning a deferred
// step instead of recursing keeps the work in Run's loop.
//
// # Core operations
//
//   - [Done]: lift a final value into a terminal step
//   - [Call]: defer the next step without invoking it (the tail-call adapter;
//     no side effects occur at creation, only when the driver unwraps it)
//   - [Run]: drive steps to completion iteratively
//   - [Func1], [Func2], [Func3]: wrap a step-returning function into one with
//     the same calling convention that returns the final value
//
// # One-shot thunks
//
// [Thunk] wraps a deferred step with affine enforcement: forcing it twice
// panics. Run never unwraps a step more than once on its own; Thunk makes the
// property hold even when a deferred computation escapes the driver loop.
//
// Panics raised by a deferred computation propagate out of Run immediately;
// no further steps execute.
package trampoline
