package stopwatch

import (
	"errors"
	"fmt"

	"github.com/BYTE-6D65/elapse/pkg/clock"
	"github.com/BYTE-6D65/elapse/pkg/duration"
)

// Err is the root of the stopwatch error family. Every misuse error
// below wraps it, so callers can match the whole family with errors.Is.
var Err = errors.New("stopwatch: invalid use")

// Errors returned for out-of-order transitions. Each one is distinct so
// callers can tell "never started" from "still running" from "double start".
var (
	ErrAlreadyRunning  = fmt.Errorf("%w: already running", Err)
	ErrNotRunning      = fmt.Errorf("%w: not running", Err)
	ErrNotStopped      = fmt.Errorf("%w: no completed measurement", Err)
	ErrNothingCaptured = fmt.Errorf("%w: nothing captured", Err)
)

// State identifies where a Stopwatch is in its measurement cycle.
type State int

const (
	// StateIdle means the watch has never been started (or was reset).
	StateIdle State = iota

	// StateRunning means a start reading is recorded and no stop yet.
	StateRunning

	// StateStopped means both readings are recorded and a duration is
	// available.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stopwatch measures elapsed time between a start and a stop reading of
// a monotonic clock.
//
// A Stopwatch has no internal locking. Sharing one across goroutines
// without external synchronization leaves the state transitions
// undefined; that is the caller's responsibility.
type Stopwatch struct {
	clk   clock.Clock
	state State
	start clock.MonoTime
	stop  clock.MonoTime
}

// Option configures a Stopwatch at construction.
type Option func(*Stopwatch)

// WithClock substitutes the monotonic clock source. Used for
// deterministic tests with clock.DeltaClock.
func WithClock(clk clock.Clock) Option {
	return func(s *Stopwatch) {
		s.clk = clk
	}
}

// New creates an idle Stopwatch over the system monotonic clock.
func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		clk: clock.NewSystemClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start records a fresh clock reading and transitions to running,
// discarding any previous measurement. Starting a running watch fails
// with ErrAlreadyRunning rather than silently restarting.
func (s *Stopwatch) Start() error {
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}
	s.start = s.clk.Now()
	s.stop = 0
	s.state = StateRunning
	return nil
}

// Stop records the stop reading and transitions to stopped. Fails with
// ErrNotRunning unless the watch is running.
func (s *Stopwatch) Stop() error {
	if s.state != StateRunning {
		return ErrNotRunning
	}
	s.stop = s.clk.Now()
	s.state = StateStopped
	return nil
}

// Reset discards both readings and returns the watch to idle.
func (s *Stopwatch) Reset() {
	s.start = 0
	s.stop = 0
	s.state = StateIdle
}

// State returns the current state.
func (s *Stopwatch) State() State {
	return s.state
}

// Duration returns the measured elapsed time. Fails with ErrNotStopped
// unless the watch is stopped. A negative reading difference, which a
// monotonic source should never produce, is clamped to zero.
func (s *Stopwatch) Duration() (duration.Duration, error) {
	if s.state != StateStopped {
		return duration.Duration{}, ErrNotStopped
	}
	d := duration.Between(s.start, s.stop)
	if d.Nanoseconds() < 0 {
		return duration.FromNanoseconds(0), nil
	}
	return d, nil
}

// Measure brackets fn with Start and Stop. The stop reading is taken on
// every exit path, including panic, so each successful Start is paired
// with exactly one Stop. fn's error passes through unchanged.
func (s *Stopwatch) Measure(fn func() error) error {
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		_ = s.Stop()
	}()
	return fn()
}

// Wrap returns a function that measures fn on every invocation. Each
// call overwrites the previous measurement; the watch reports only the
// most recent call's duration.
func (s *Stopwatch) Wrap(fn func() error) func() error {
	return func() error {
		return s.Measure(fn)
	}
}

// MeasureValue is Measure for functions that return a value alongside
// their error. The value and error pass through unchanged.
func MeasureValue[T any](s *Stopwatch, fn func() (T, error)) (T, error) {
	if err := s.Start(); err != nil {
		var zero T
		return zero, err
	}
	defer func() {
		_ = s.Stop()
	}()
	return fn()
}
