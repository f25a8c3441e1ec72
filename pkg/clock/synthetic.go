package clock

import (
	"sync"
	"time"
)

// SyntheticClock is a Clock whose readings are driven by the caller
// instead of real time. It is the deterministic substitute for
// SystemClock in tests and replay scenarios.
type SyntheticClock interface {
	Clock

	// Load initializes the clock with a start time and sequence of deltas
	Load(start MonoTime, deltas []time.Duration)

	// Advance moves the reading forward by the next loaded delta
	Advance()

	// AdvanceBy moves the reading forward by an arbitrary amount
	AdvanceBy(d time.Duration)

	// Reset rewinds to the start reading and the first delta
	Reset()

	// HasNext reports whether more loaded deltas remain
	HasNext() bool
}

// DeltaClock implements SyntheticClock over a pre-loaded delta sequence.
type DeltaClock struct {
	mu sync.RWMutex

	start   MonoTime        // Initial reading
	deltas  []time.Duration // Pre-loaded deltas
	current MonoTime        // Current reading
	index   int             // Position in the delta sequence
}

// NewDeltaClock creates a SyntheticClock starting at reading zero with
// no deltas loaded.
func NewDeltaClock() *DeltaClock {
	return &DeltaClock{}
}

// Load initializes the clock with a start reading and deltas.
func (d *DeltaClock) Load(start MonoTime, deltas []time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.start = start
	d.current = start
	d.deltas = make([]time.Duration, len(deltas))
	copy(d.deltas, deltas)
	d.index = 0
}

// Now returns the current reading.
func (d *DeltaClock) Now() MonoTime {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

// Since returns the duration elapsed since the given reading.
func (d *DeltaClock) Since(t MonoTime) time.Duration {
	return ToDuration(d.Now() - t)
}

// Advance moves the reading forward by the next delta in the sequence.
// Past the end of the sequence it is a no-op.
func (d *DeltaClock) Advance() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.index >= len(d.deltas) {
		return
	}
	d.current += FromDuration(d.deltas[d.index])
	d.index++
}

// AdvanceBy moves the reading forward by d, independent of the loaded
// sequence. Negative amounts are ignored to preserve monotonicity.
func (d *DeltaClock) AdvanceBy(by time.Duration) {
	if by < 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current += FromDuration(by)
}

// Reset rewinds to the start reading and the first delta.
func (d *DeltaClock) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = d.start
	d.index = 0
}

// HasNext reports whether more loaded deltas remain.
func (d *DeltaClock) HasNext() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index < len(d.deltas)
}
