package pure

import (
	"github.com/groundwork-fn/groundwork/trampoline"
)

// Reduce folds seq left to right: combine is applied to the running
// accumulator and each element exactly once, in order, and the final
// accumulator is returned. An empty seq returns initial without invoking
// combine.
//
// Reduce is written as a self-referential trampolined step function: each
// iteration combines the head into the accumulator and defers the fold of the
// tail via [trampoline.Call], so arbitrarily long sequences fold in constant
// stack depth. A panic from combine propagates to the caller; the partial
// accumulator is lost.
func Reduce[A, E any](combine func(A, E) A, seq []E, initial A) A {
	var step func(acc A, rest []E) trampoline.Step[A]
	step = func(acc A, rest []E) trampoline.Step[A] {
		head, ok := First(rest)
		if !ok {
			return trampoline.Done(acc)
		}
		next := combine(acc, head)
		tail := Rest(rest)
		return trampoline.Call(func() trampoline.Step[A] {
			return step(next, tail)
		})
	}
	return trampoline.Run(step(initial, seq))
}
