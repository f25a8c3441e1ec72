package journal

import (
	"io"
	"sync"

	"github.com/go-json-experiment/json"

	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

// Entry is one measurement retained by the journal.
type Entry struct {
	// ID is the capture's unique identifier
	ID string `json:"id"`

	// Name is the timer/catcher name that produced the measurement
	Name string `json:"name"`

	// Nanoseconds is the exact measured duration
	Nanoseconds int64 `json:"nanoseconds"`

	// Elapsed is the human-readable rendering of the same duration
	Elapsed string `json:"elapsed"`

	// Ordinal is a 1-based sequence number over the journal's lifetime
	Ordinal uint64 `json:"ordinal"`
}

// Journal keeps the last N measurements in a ring buffer for debugging
// dumps. It is in-memory only; Dump is an export, not persistence.
//
// Journal implements stopwatch.Observer.
type Journal struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	size    int
	next    uint64
}

// New creates a journal retaining the last size measurements.
func New(size int) *Journal {
	if size <= 0 {
		size = 100 // Default
	}
	return &Journal{
		entries: make([]Entry, size),
		size:    size,
	}
}

// Observe records one completed capture.
func (j *Journal) Observe(name string, c stopwatch.Capture) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.next++
	j.entries[j.index] = Entry{
		ID:          c.ID,
		Name:        name,
		Nanoseconds: c.Elapsed.Nanoseconds(),
		Elapsed:     c.Elapsed.String(),
		Ordinal:     j.next,
	}
	j.index = (j.index + 1) % j.size
}

// Len returns the number of retained entries.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.next < uint64(j.size) {
		return int(j.next)
	}
	return j.size
}

// Entries returns the retained measurements, oldest first.
func (j *Journal) Entries() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.ordered()
}

// Dump writes the retained measurements to w as JSON, oldest first.
func (j *Journal) Dump(w io.Writer) error {
	j.mu.Lock()
	// Copy under lock to avoid holding it during slow writes
	entries := j.ordered()
	j.mu.Unlock()

	return json.MarshalWrite(w, entries)
}

// ordered assembles the ring contents chronologically.
// Must be called with the lock held.
func (j *Journal) ordered() []Entry {
	out := make([]Entry, 0, j.size)
	for i := 0; i < j.size; i++ {
		e := j.entries[(j.index+i)%j.size]
		// Skip unused slots before the buffer fills
		if e.Ordinal == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}
