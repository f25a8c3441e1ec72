package stopwatch

import (
	"github.com/google/uuid"

	"github.com/BYTE-6D65/elapse/pkg/duration"
)

// Capture is one completed measurement taken by a Catcher.
type Capture struct {
	// ID is a unique identifier for this capture
	ID string

	// Elapsed is the measured duration
	Elapsed duration.Duration
}

// Observer receives each capture as it completes. Implementations live
// in pkg/telemetry (prometheus export) and pkg/journal (bounded log).
type Observer interface {
	Observe(name string, c Capture)
}

// Catcher measures code blocks or wrapped functions and keeps the
// captured durations for later inspection. Unlike a bare Stopwatch it
// accumulates a (optionally bounded) history instead of holding only
// the latest readings.
type Catcher struct {
	name      string
	watch     *Stopwatch
	capacity  int // 0 means unbounded
	captures  []Capture
	observers []Observer
}

// CatcherOption configures a Catcher at construction.
type CatcherOption func(*Catcher)

// WithCapacity bounds the capture history to n entries; the oldest
// capture is evicted when a new one would exceed the bound. n <= 0
// leaves the history unbounded.
func WithCapacity(n int) CatcherOption {
	return func(c *Catcher) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithObserver registers an observer notified on every capture.
func WithObserver(o Observer) CatcherOption {
	return func(c *Catcher) {
		c.observers = append(c.observers, o)
	}
}

// WithStopwatch substitutes the underlying stopwatch, typically to
// inject a synthetic clock.
func WithStopwatch(w *Stopwatch) CatcherOption {
	return func(c *Catcher) {
		c.watch = w
	}
}

// NewCatcher creates a Catcher named for observer labels and reporting.
func NewCatcher(name string, opts ...CatcherOption) *Catcher {
	c := &Catcher{
		name:  name,
		watch: New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the catcher's name.
func (c *Catcher) Name() string {
	return c.name
}

// Measure brackets fn with a measurement and records the capture. The
// capture is taken on every exit path, including panic; fn's error
// passes through unchanged.
func (c *Catcher) Measure(fn func() error) error {
	if err := c.watch.Start(); err != nil {
		return err
	}
	defer c.record()
	return fn()
}

// Wrap returns a function that records a capture on every invocation.
func (c *Catcher) Wrap(fn func() error) func() error {
	return func() error {
		return c.Measure(fn)
	}
}

// Last returns the most recent capture, failing with ErrNothingCaptured
// when nothing has been measured yet.
func (c *Catcher) Last() (Capture, error) {
	if len(c.captures) == 0 {
		return Capture{}, ErrNothingCaptured
	}
	return c.captures[len(c.captures)-1], nil
}

// Captures returns the capture history, oldest first.
func (c *Catcher) Captures() []Capture {
	out := make([]Capture, len(c.captures))
	copy(out, c.captures)
	return out
}

func (c *Catcher) record() {
	if err := c.watch.Stop(); err != nil {
		return
	}
	d, err := c.watch.Duration()
	if err != nil {
		return
	}

	capture := Capture{
		ID:      uuid.New().String(),
		Elapsed: d,
	}
	c.captures = append(c.captures, capture)
	if c.capacity > 0 && len(c.captures) > c.capacity {
		c.captures = c.captures[1:]
	}

	for _, o := range c.observers {
		o.Observe(c.name, capture)
	}
}
