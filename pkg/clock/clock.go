package clock

import "time"

// MonoTime represents a monotonic timestamp in nanoseconds since an arbitrary epoch.
// Using int64 provides ~292 years of range with nanosecond precision.
//
// Readings are only meaningful relative to other readings from the same
// clock source; there is no wall-clock anchor.
type MonoTime int64

// Clock provides monotonic time readings for elapsed-time measurement.
// Now must be non-decreasing across successive calls on a given source.
type Clock interface {
	// Now returns the current monotonic time
	Now() MonoTime

	// Since returns the duration elapsed since the given monotonic time
	Since(t MonoTime) time.Duration
}

// ToDuration converts a MonoTime difference (nanoseconds) to a time.Duration.
func ToDuration(ns MonoTime) time.Duration {
	return time.Duration(ns)
}

// FromDuration converts a time.Duration to MonoTime (nanoseconds).
func FromDuration(d time.Duration) MonoTime {
	return MonoTime(d.Nanoseconds())
}

// SystemClock uses the system's monotonic clock. This is the highest
// resolution source available on the platform and includes time spent
// sleeping or blocked.
type SystemClock struct {
	epoch time.Time // Cached at creation to provide stable monotonic base
}

// NewSystemClock creates a new SystemClock anchored at the current time.
func NewSystemClock() *SystemClock {
	return &SystemClock{
		epoch: time.Now(),
	}
}

// Now returns the current monotonic time in nanoseconds since epoch.
func (s *SystemClock) Now() MonoTime {
	// time.Since reads the runtime's monotonic clock internally
	return FromDuration(time.Since(s.epoch))
}

// Since returns the duration elapsed since the given monotonic time.
func (s *SystemClock) Since(t MonoTime) time.Duration {
	return ToDuration(s.Now() - t)
}
