package execctl_test

import (
	"sync"
	"time"

	"github.com/groundwork-fn/groundwork/execctl"
)

// fakeTimeline is a deterministic Clock + Scheduler for controller tests.
// Time only moves through Advance, which fires due timers in deadline order
// (ties broken by scheduling order) with the clock set to each timer's
// deadline while its callback runs.
type fakeTimeline struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	seq    int
}

type fakeTimer struct {
	tl       *fakeTimeline
	deadline time.Time
	seq      int
	fn       func()
	stopped  bool
	fired    bool
}

func newFakeTimeline() *fakeTimeline {
	// Anything but the zero time: controllers treat a zero previous-execution
	// timestamp as "never ran".
	return &fakeTimeline{now: time.Unix(1_700_000_000, 0)}
}

func (tl *fakeTimeline) Now() time.Time {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return tl.now
}

func (tl *fakeTimeline) AfterFunc(d time.Duration, fn func()) execctl.Timer {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.seq++
	t := &fakeTimer{
		tl:       tl,
		deadline: tl.now.Add(d),
		seq:      tl.seq,
		fn:       fn,
	}
	tl.timers = append(tl.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.tl.mu.Lock()
	defer t.tl.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (tl *fakeTimeline) Advance(d time.Duration) {
	tl.mu.Lock()
	target := tl.now.Add(d)
	for {
		var next *fakeTimer
		for _, t := range tl.timers {
			if t.stopped || t.fired || t.deadline.After(target) {
				continue
			}
			if next == nil ||
				t.deadline.Before(next.deadline) ||
				(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
				next = t
			}
		}
		if next == nil {
			break
		}
		next.fired = true
		tl.now = next.deadline
		fn := next.fn
		tl.mu.Unlock()
		fn()
		tl.mu.Lock()
	}
	tl.now = target
	tl.mu.Unlock()
}
