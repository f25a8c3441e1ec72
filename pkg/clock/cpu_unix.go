//go:build linux || darwin || freebsd || netbsd || openbsd

package clock

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUClock measures process CPU time, excluding time spent sleeping or
// blocked. It reads CLOCK_PROCESS_CPUTIME_ID, so two goroutines running
// concurrently both contribute to the reading.
type CPUClock struct{}

// NewCPUClock creates a clock over the process CPU-time counter.
func NewCPUClock() *CPUClock {
	return &CPUClock{}
}

// Now returns the accumulated process CPU time in nanoseconds.
func (c *CPUClock) Now() MonoTime {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		// The call cannot fail for a valid clock ID on supported
		// kernels; fall back to a zero reading rather than panic.
		return 0
	}
	return MonoTime(ts.Nano())
}

// Since returns the CPU time consumed since the given reading.
func (c *CPUClock) Since(t MonoTime) time.Duration {
	return ToDuration(c.Now() - t)
}
