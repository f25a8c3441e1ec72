package registry

import (
	"testing"
	"time"

	"github.com/BYTE-6D65/elapse/pkg/clock"
)

func TestRegistry_TimerGetOrCreate(t *testing.T) {
	r := New()

	first := r.Timer("render")
	second := r.Timer("render")

	if first != second {
		t.Error("Timer should return the same stopwatch for the same name")
	}
	if first.State().String() != "idle" {
		t.Errorf("New timer state = %v, want idle", first.State())
	}
}

func TestRegistry_Get(t *testing.T) {
	r := New()

	if _, ok := r.Get("missing"); ok {
		t.Error("Get should not create entries")
	}

	r.Timer("present")
	if _, ok := r.Get("present"); !ok {
		t.Error("Get should find a registered timer")
	}
}

func TestRegistry_NamesDeleteClear(t *testing.T) {
	r := New()
	r.Timer("a")
	r.Timer("b")

	if got := len(r.Names()); got != 2 {
		t.Errorf("Names has %d entries, want 2", got)
	}

	r.Delete("a")
	if _, ok := r.Get("a"); ok {
		t.Error("Deleted timer still present")
	}

	r.Clear()
	if got := len(r.Names()); got != 0 {
		t.Errorf("Names after Clear has %d entries, want 0", got)
	}
}

func TestRegistry_Snapshot(t *testing.T) {
	clk := clock.NewDeltaClock()
	clk.Load(0, []time.Duration{8 * time.Millisecond})

	r := New(WithClock(clk))

	stopped := r.Timer("stopped")
	_ = stopped.Start()
	clk.Advance()
	_ = stopped.Stop()

	running := r.Timer("running")
	_ = running.Start()

	r.Timer("idle")

	snap := r.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Snapshot has %d entries, want only the stopped watch", len(snap))
	}
	if d, ok := snap["stopped"]; !ok || d.Nanoseconds() != (8*time.Millisecond).Nanoseconds() {
		t.Errorf("Snapshot[stopped] = %v, want 8ms", d)
	}
}
