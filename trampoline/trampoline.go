package trampoline

// Step is the trampoline's loop token: either a terminal value or a deferred
// continuation. The zero value is a terminal step holding A's zero value.
type Step[A any] struct {
	value A
	next  func() Step[A]
}

// Done lifts a final value into a terminal step.
func Done[A any](v A) Step[A] {
	return Step[A]{value: v}
}

// Call defers the next step instead of invoking it. This is the only
// sanctioned way a trampolined function recurses: return Call of the next
// invocation and let [Run] unwrap it.
//
// Creation has no side effects; next runs only when the driver unwraps the
// returned step.
func Call[A any](next func() Step[A]) Step[A] {
	return Step[A]{next: next}
}

// Done reports whether the step is terminal.
func (s Step[A]) Done() bool { return s.next == nil }

// Run drives a step to completion. Deferred steps are unwrapped one at a time
// in an iterative loop, so the call stack depth stays constant regardless of
// how many logical recursive steps occur.
//
// A panic from a deferred computation propagates immediately; no further
// steps execute.
func Run[A any](s Step[A]) A {
	for s.next != nil {
		s = s.next()
	}
	return s.value
}

// Func1 wraps a unary step-returning function into one with the same calling
// convention that drives the trampoline and returns the final value.
func Func1[I1, A any](fn func(I1) Step[A]) func(I1) A {
	return func(i1 I1) A {
		return Run(fn(i1))
	}
}

// Func2 is the binary-arity form of [Func1].
func Func2[I1, I2, A any](fn func(I1, I2) Step[A]) func(I1, I2) A {
	return func(i1 I1, i2 I2) A {
		return Run(fn(i1, i2))
	}
}

// Func3 is the ternary-arity form of [Func1].
func Func3[I1, I2, I3, A any](fn func(I1, I2, I3) Step[A]) func(I1, I2, I3) A {
	return func(i1 I1, i2 I2, i3 I3) A {
		return Run(fn(i1, i2, i3))
	}
}
