package pure

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Memoization for pure functions. A memoized function assumes referential
// transparency: same inputs, same output, no observable effects. Do not
// memoize functions that depend on time, I/O, or mutable state.
//
// Inputs must either be comparable or implement fmt.Stringer; Stringer inputs
// are keyed by an xxhash fingerprint of their string form. A non-comparable
// input without a String method panics at call time.

// ComparableOrStringer documents the input constraint; it cannot be expressed
// as a type constraint, so violations surface as runtime panics on map insert.
type ComparableOrStringer = any

// Memoize1 wraps a unary pure function with a bounded cache.
// maxSize bounds each cache generation; it must be greater than zero.
func Memoize1[I1 ComparableOrStringer, O any](pureFn func(I1) O, maxSize int) func(I1) O {
	tab := newMemoTable[O](maxSize)
	return func(i1 I1) O {
		return tab.getOrCompute(memoKey{memoPart(i1), nil, nil}, func() O {
			return pureFn(i1)
		})
	}
}

// Memoize2 is the binary-arity form of [Memoize1].
func Memoize2[I1, I2 ComparableOrStringer, O any](pureFn func(I1, I2) O, maxSize int) func(I1, I2) O {
	tab := newMemoTable[O](maxSize)
	return func(i1 I1, i2 I2) O {
		return tab.getOrCompute(memoKey{memoPart(i1), memoPart(i2), nil}, func() O {
			return pureFn(i1, i2)
		})
	}
}

// Memoize3 is the ternary-arity form of [Memoize1].
func Memoize3[I1, I2, I3 ComparableOrStringer, O any](pureFn func(I1, I2, I3) O, maxSize int) func(I1, I2, I3) O {
	tab := newMemoTable[O](maxSize)
	return func(i1 I1, i2 I2, i3 I3) O {
		return tab.getOrCompute(memoKey{memoPart(i1), memoPart(i2), memoPart(i3)}, func() O {
			return pureFn(i1, i2, i3)
		})
	}
}

// memoKey composes up to three per-argument parts into one comparable key.
type memoKey [3]any

// memoPart derives the comparable cache-key part for one argument.
func memoPart(in ComparableOrStringer) any {
	if stringer, ok := in.(fmt.Stringer); ok {
		return xxhash.Sum64String(stringer.String())
	}
	return in
}

// memoTable is a bounded two-generation cache. Writes go to the head
// generation; when it fills, the head becomes the fallback and a fresh head
// takes over, evicting the previous fallback wholesale. Lookups consult the
// head first, then the fallback.
type memoTable[O any] struct {
	mu      sync.Mutex
	head    map[memoKey]O
	prev    map[memoKey]O
	maxSize int
}

func newMemoTable[O any](maxSize int) *memoTable[O] {
	if maxSize <= 0 {
		panic("pure: memoize maxSize should be greater than 0")
	}
	return &memoTable[O]{
		head:    make(map[memoKey]O, maxSize),
		maxSize: maxSize,
	}
}

func (t *memoTable[O]) getOrCompute(k memoKey, compute func() O) O {
	t.mu.Lock()
	if v, ok := t.head[k]; ok {
		t.mu.Unlock()
		return v
	}
	if v, ok := t.prev[k]; ok {
		t.mu.Unlock()
		return v
	}
	t.mu.Unlock()

	// Computed outside the lock: pureFn may be expensive, and purity makes a
	// duplicate computation under contention harmless.
	v := compute()

	t.mu.Lock()
	if len(t.head) >= t.maxSize {
		t.prev = t.head
		t.head = make(map[memoKey]O, t.maxSize)
	}
	t.head[k] = v
	t.mu.Unlock()
	return v
}
