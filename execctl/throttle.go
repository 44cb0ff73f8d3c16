package execctl

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Throttler bounds a wrapped function to at most one execution per delay
// window. The first call in an idle window executes immediately; calls
// arriving before the window closes arm exactly one trailing execution.
//
// Trailing-edge argument policy: the trailing execution uses the arguments
// present when the window was armed, not those of later suppressed calls.
// Callers relying on last-call arguments want [Debouncer] instead.
type Throttler[A any] struct {
	id     string
	fn     func(A)
	delay  time.Duration
	clock  Clock
	sched  Scheduler
	logger *zap.Logger

	mu       sync.Mutex
	previous time.Time // last accepted execution; zero until the first call
	timer    Timer     // non-nil while armed
	pending  A         // arguments captured at arm time
	gen      uint64    // arm generation; stale timer callbacks check it and bail
}

// NewThrottler wraps fn with a throttle of the given delay.
// The return value of fn, if any, is not observable through the controller,
// so fn takes one argument and returns nothing; bundle multiple arguments in
// a struct.
func NewThrottler[A any](fn func(A), delay time.Duration, opts ...Option) *Throttler[A] {
	cfg := newConfig(opts)
	return &Throttler[A]{
		id:     uuid.New().String(),
		fn:     fn,
		delay:  delay,
		clock:  cfg.clock,
		sched:  cfg.sched,
		logger: cfg.logger,
	}
}

// Throttle wraps fn and returns a function with the same calling convention.
// Equivalent to NewThrottler(fn, delay, opts...).Call.
func Throttle[A any](fn func(A), delay time.Duration, opts ...Option) func(A) {
	return NewThrottler(fn, delay, opts...).Call
}

// Call invokes the wrapped function subject to the throttle policy.
func (t *Throttler[A]) Call(arg A) {
	t.mu.Lock()
	now := t.clock.Now()
	remaining := t.delay - now.Sub(t.previous)

	if t.previous.IsZero() || remaining <= 0 {
		// Window elapsed: cancel any stale trailing call and fire leading-edge.
		if t.timer != nil {
			t.timer.Stop()
			t.clearArmedLocked()
		}
		t.previous = now
		t.mu.Unlock()
		t.logger.Debug("throttle leading-edge execution", zap.String("throttler", t.id))
		t.fn(arg)
		return
	}

	if t.timer != nil {
		// Already armed; the pending arguments stay as captured at arm time.
		t.mu.Unlock()
		t.logger.Debug("throttle call suppressed while armed", zap.String("throttler", t.id))
		return
	}

	t.pending = arg
	t.gen++
	gen := t.gen
	t.timer = t.sched.AfterFunc(remaining, func() { t.fire(gen) })
	t.mu.Unlock()
	t.logger.Debug("throttle armed trailing-edge execution",
		zap.String("throttler", t.id),
		zap.Duration("remaining", remaining),
	)
}

// fire is the trailing-edge timer callback. Controller state is cleared
// before the wrapped function runs, so a panic inside it cannot block
// subsequent calls.
func (t *Throttler[A]) fire(gen uint64) {
	t.mu.Lock()
	if t.timer == nil || gen != t.gen {
		// Lost the race against Cancel, a leading-edge Stop, or a re-arm.
		t.mu.Unlock()
		return
	}
	arg := t.pending
	t.previous = t.clock.Now()
	t.clearArmedLocked()
	t.mu.Unlock()

	t.logger.Debug("throttle trailing-edge execution", zap.String("throttler", t.id))
	t.fn(arg)
}

// Cancel drops the pending trailing execution, if any.
// The accepted-execution timestamp is untouched, so the current window still
// bounds the next leading-edge call.
func (t *Throttler[A]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer == nil {
		return
	}
	t.timer.Stop()
	t.clearArmedLocked()
	t.logger.Debug("throttle pending execution canceled", zap.String("throttler", t.id))
}

// Window reports the throttle window anchored at the last accepted execution.
// Before the first execution the window is anchored at the zero time.
func (t *Throttler[A]) Window() TimeSpan {
	t.mu.Lock()
	defer t.mu.Unlock()
	return NewTimeSpan(t.previous, t.previous.Add(t.delay))
}

func (t *Throttler[A]) clearArmedLocked() {
	var zero A
	t.timer = nil
	t.pending = zero
}
