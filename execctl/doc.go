// Package execctl provides time-windowed invocation controllers for
// high-frequency call streams.
//
// A controller wraps a function and governs how often it may actually run:
//
//   - [Throttler] bounds execution to at most once per fixed interval. The
//     first call in an idle window runs immediately (leading edge); further
//     calls inside the window arm exactly one trailing execution at window
//     close, using the arguments captured when the window was armed.
//   - [Debouncer] delays execution until a quiet period has elapsed since the
//     last call, collapsing a burst into a single trailing execution with the
//     burst's final arguments.
//
// [Throttle] and [Debounce] are convenience forms returning a plain function
// with the wrapped function's calling convention.
//
// # Time collaborators
//
// Controllers never read the wall clock or start timers directly. They consume
// a [Clock] and a [Scheduler], defaulting to time.Now and time.AfterFunc.
// Tests inject deterministic implementations and advance time manually.
//
// # Concurrency
//
// Controller state is guarded by a mutex, so the wrapped function may be
// invoked from multiple goroutines. Invocations and timer callbacks are
// serialized against the state; the wrapped function itself runs outside the
// lock. Timer callbacks clear controller state before invoking the wrapped
// function, so a panic inside it cannot leave a controller wedged.
//
// # Observability
//
// Controllers are silent by default. [WithLogger] attaches a zap logger that
// emits debug-level state transitions tagged with the controller id.
package execctl
