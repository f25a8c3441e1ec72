package registry

import (
	"sync"

	"github.com/BYTE-6D65/elapse/pkg/clock"
	"github.com/BYTE-6D65/elapse/pkg/duration"
	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

// Registry holds named stopwatches so measurement sites across a
// program can share timers without threading them through call chains.
//
// The map access is thread-safe; the stopwatches themselves are not.
// Concurrent use of one named watch still needs external
// synchronization.
type Registry struct {
	mu      sync.RWMutex
	clk     clock.Clock
	watches map[string]*stopwatch.Stopwatch
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithClock sets the clock source used for stopwatches the registry
// creates.
func WithClock(clk clock.Clock) Option {
	return func(r *Registry) {
		r.clk = clk
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		watches: make(map[string]*stopwatch.Stopwatch),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timer returns the stopwatch registered under name, creating an idle
// one on first use.
func (r *Registry) Timer(name string) *stopwatch.Stopwatch {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.watches[name]; ok {
		return w
	}

	var w *stopwatch.Stopwatch
	if r.clk != nil {
		w = stopwatch.New(stopwatch.WithClock(r.clk))
	} else {
		w = stopwatch.New()
	}
	r.watches[name] = w
	return w
}

// Get retrieves a stopwatch by name without creating one.
func (r *Registry) Get(name string) (*stopwatch.Stopwatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.watches[name]
	return w, ok
}

// Names returns all registered names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.watches))
	for name := range r.watches {
		names = append(names, name)
	}
	return names
}

// Delete removes a stopwatch by name.
func (r *Registry) Delete(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.watches, name)
}

// Clear removes all stopwatches.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watches = make(map[string]*stopwatch.Stopwatch)
}

// Snapshot returns the last measured duration of every stopped
// stopwatch. Idle and running watches are skipped.
func (r *Registry) Snapshot() map[string]duration.Duration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]duration.Duration)
	for name, w := range r.watches {
		if d, err := w.Duration(); err == nil {
			snap[name] = d
		}
	}
	return snap
}
