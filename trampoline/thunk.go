package trampoline

import (
	"sync/atomic"
)

// Thunk wraps a deferred step with one-shot enforcement.
// It can be forced at most once; subsequent attempts panic (Force)
// or return false (TryForce).
type Thunk[A any] struct {
	spent atomic.Uintptr
	run   func() Step[A]
}

// Defer creates a one-shot thunk from a deferred computation.
// Nothing runs until the thunk is forced.
func Defer[A any](run func() Step[A]) *Thunk[A] {
	return &Thunk[A]{run: run}
}

// Force runs the deferred computation.
// Panics if the thunk has already been forced.
func (t *Thunk[A]) Force() Step[A] {
	if t.spent.Add(1) != 1 {
		panic("trampoline: thunk forced twice")
	}
	return t.run()
}

// TryForce attempts to run the deferred computation.
// Returns (step, true) on success, or (zero, false) if already forced.
func (t *Thunk[A]) TryForce() (Step[A], bool) {
	if t.spent.Add(1) != 1 {
		var zero Step[A]
		return zero, false
	}
	return t.run(), true
}

// Discard marks the thunk as spent without running it.
func (t *Thunk[A]) Discard() {
	t.spent.Store(1)
}

// Step adapts the thunk into a deferred [Step] for the driver.
// Unwrapping the returned step forces the thunk, so handing the same thunk
// to [Run] twice panics rather than repeating its effects.
func (t *Thunk[A]) Step() Step[A] {
	return Call(t.Force)
}
