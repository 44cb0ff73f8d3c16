package execctl

import "time"

// Clock supplies the controller's notion of the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a handle to a pending scheduled callback.
// Stop reports whether the callback was prevented from running.
type Timer interface {
	Stop() bool
}

// Scheduler runs a callback no earlier than d from now.
// Among equal deadlines, callbacks fire in scheduling order.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
func SystemClock() Clock { return systemClock{} }

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemScheduler schedules through time.AfterFunc. Callbacks run on their
// own goroutine, serialized against controller state by the controller mutex.
func SystemScheduler() Scheduler { return systemScheduler{} }
