package journal

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/BYTE-6D65/elapse/pkg/clock"
	"github.com/BYTE-6D65/elapse/pkg/duration"
	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

func capture(id string, d time.Duration) stopwatch.Capture {
	return stopwatch.Capture{ID: id, Elapsed: duration.FromStd(d)}
}

func TestJournal_Observe(t *testing.T) {
	j := New(10)

	j.Observe("load", capture("a", time.Millisecond))
	j.Observe("load", capture("b", 2*time.Millisecond))

	if j.Len() != 2 {
		t.Fatalf("Len = %d, want 2", j.Len())
	}

	entries := j.Entries()
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Errorf("Entries out of order: %v", entries)
	}
	if entries[0].Ordinal != 1 || entries[1].Ordinal != 2 {
		t.Errorf("Ordinals = %d, %d; want 1, 2", entries[0].Ordinal, entries[1].Ordinal)
	}
	if entries[1].Nanoseconds != (2 * time.Millisecond).Nanoseconds() {
		t.Errorf("Nanoseconds = %d, want 2ms", entries[1].Nanoseconds)
	}
	if entries[0].Elapsed != "0:00:00.001000000" {
		t.Errorf("Elapsed = %q", entries[0].Elapsed)
	}
}

func TestJournal_RingWrap(t *testing.T) {
	j := New(3)

	for i := 1; i <= 5; i++ {
		j.Observe("tick", capture(fmt.Sprintf("c%d", i), time.Duration(i)*time.Millisecond))
	}

	if j.Len() != 3 {
		t.Fatalf("Len = %d, want ring size 3", j.Len())
	}

	entries := j.Entries()
	want := []string{"c3", "c4", "c5"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("Entry %d = %s, want %s (oldest evicted first)", i, entries[i].ID, id)
		}
	}
}

func TestJournal_DefaultSize(t *testing.T) {
	j := New(0)
	j.Observe("x", capture("only", time.Microsecond))
	if j.Len() != 1 {
		t.Errorf("Len = %d, want 1", j.Len())
	}
}

func TestJournal_Dump(t *testing.T) {
	j := New(5)
	j.Observe("render", capture("cap-1", 1500*time.Nanosecond))

	var buf bytes.Buffer
	if err := j.Dump(&buf); err != nil {
		t.Fatalf("Dump failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"cap-1"`, `"render"`, `"nanoseconds":1500`, `"0:00:00.000001500"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %s:\n%s", want, out)
		}
	}
}

func TestJournal_AsCatcherObserver(t *testing.T) {
	j := New(5)

	clk := clock.NewDeltaClock()
	clk.Load(0, []time.Duration{4 * time.Millisecond})

	c := stopwatch.NewCatcher("scoped",
		stopwatch.WithStopwatch(stopwatch.New(stopwatch.WithClock(clk))),
		stopwatch.WithObserver(j),
	)

	if err := c.Measure(func() error {
		clk.Advance()
		return nil
	}); err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	entries := j.Entries()
	if len(entries) != 1 {
		t.Fatalf("Journal has %d entries, want 1", len(entries))
	}
	if entries[0].Name != "scoped" {
		t.Errorf("Entry name = %q, want catcher name", entries[0].Name)
	}
	if entries[0].Nanoseconds != (4 * time.Millisecond).Nanoseconds() {
		t.Errorf("Entry duration = %d, want 4ms", entries[0].Nanoseconds)
	}
}
