package execctl

import "go.uber.org/zap"

type config struct {
	clock  Clock
	sched  Scheduler
	logger *zap.Logger
}

// Option customizes a controller's collaborators.
type Option func(*config)

// WithClock replaces the default time.Now-backed clock.
func WithClock(c Clock) Option {
	return func(cfg *config) { cfg.clock = c }
}

// WithScheduler replaces the default time.AfterFunc-backed scheduler.
func WithScheduler(s Scheduler) Option {
	return func(cfg *config) { cfg.sched = s }
}

// WithLogger attaches a logger for debug-level state-transition logs.
// Controllers log nothing without it.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) { cfg.logger = l }
}

func newConfig(opts []Option) config {
	cfg := config{
		clock:  SystemClock(),
		sched:  SystemScheduler(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
