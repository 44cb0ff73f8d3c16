package execctl

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Debouncer delays execution of a wrapped function until a quiet period of
// the configured delay has elapsed since the last call. Each call replaces
// the pending arguments and restarts the quiet-period timer, so a burst of
// calls collapses into one execution carrying the burst's final arguments.
type Debouncer[A any] struct {
	id     string
	fn     func(A)
	delay  time.Duration
	sched  Scheduler
	logger *zap.Logger

	mu      sync.Mutex
	timer   Timer // non-nil while an execution is pending
	pending A
	gen     uint64 // arm generation; stale timer callbacks check it and bail
}

// NewDebouncer wraps fn with a quiet-period gate of the given delay.
func NewDebouncer[A any](fn func(A), delay time.Duration, opts ...Option) *Debouncer[A] {
	cfg := newConfig(opts)
	return &Debouncer[A]{
		id:     uuid.New().String(),
		fn:     fn,
		delay:  delay,
		sched:  cfg.sched,
		logger: cfg.logger,
	}
}

// Debounce wraps fn and returns a function with the same calling convention.
// Equivalent to NewDebouncer(fn, delay, opts...).Call.
func Debounce[A any](fn func(A), delay time.Duration, opts ...Option) func(A) {
	return NewDebouncer(fn, delay, opts...).Call
}

// Call records the latest arguments and restarts the quiet-period timer.
// Any previously pending execution is replaced, never duplicated.
func (d *Debouncer[A]) Call(arg A) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = arg
	d.gen++
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.delay, func() { d.fire(gen) })
	d.mu.Unlock()

	d.logger.Debug("debounce timer reset", zap.String("debouncer", d.id))
}

// fire is the quiet-period timer callback. Controller state is cleared before
// the wrapped function runs, so a panic inside it cannot block later calls.
func (d *Debouncer[A]) fire(gen uint64) {
	d.mu.Lock()
	if d.timer == nil || gen != d.gen {
		// Lost the race against Cancel or a concurrent reset.
		d.mu.Unlock()
		return
	}
	arg := d.pending
	d.clearPendingLocked()
	d.mu.Unlock()

	d.logger.Debug("debounce execution", zap.String("debouncer", d.id))
	d.fn(arg)
}

// Cancel drops the pending execution, if any.
func (d *Debouncer[A]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return
	}
	d.timer.Stop()
	d.clearPendingLocked()
	d.logger.Debug("debounce pending execution canceled", zap.String("debouncer", d.id))
}

// Flush executes the pending call immediately instead of waiting out the
// quiet period. No-op when nothing is pending.
func (d *Debouncer[A]) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	arg := d.pending
	d.clearPendingLocked()
	d.mu.Unlock()

	d.logger.Debug("debounce flushed", zap.String("debouncer", d.id))
	d.fn(arg)
}

func (d *Debouncer[A]) clearPendingLocked() {
	var zero A
	d.timer = nil
	d.pending = zero
}
