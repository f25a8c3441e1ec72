//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package clock

import "time"

// CPUClock degrades to the system monotonic clock on platforms without a
// process CPU-time counter. Readings then include sleep time.
type CPUClock struct {
	sys *SystemClock
}

// NewCPUClock creates a clock that approximates CPU time with the
// monotonic clock on this platform.
func NewCPUClock() *CPUClock {
	return &CPUClock{sys: NewSystemClock()}
}

// Now returns the current monotonic reading.
func (c *CPUClock) Now() MonoTime {
	return c.sys.Now()
}

// Since returns the duration elapsed since the given reading.
func (c *CPUClock) Since(t MonoTime) time.Duration {
	return c.sys.Since(t)
}
