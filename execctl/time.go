package execctl

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan is a half-open time interval, used to describe throttle windows.
type TimeSpan = timespan.TimeSpan

// NewTimeSpan builds the span between two instants.
func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
