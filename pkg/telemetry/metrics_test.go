package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/BYTE-6D65/elapse/pkg/clock"
	"github.com/BYTE-6D65/elapse/pkg/duration"
	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

func TestRecorder_Observe(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	rec.Observe("query", stopwatch.Capture{
		ID:      "cap-1",
		Elapsed: duration.FromStd(250 * time.Millisecond),
	})
	rec.Observe("query", stopwatch.Capture{
		ID:      "cap-2",
		Elapsed: duration.FromStd(100 * time.Millisecond),
	})

	if got := testutil.ToFloat64(rec.MeasurementsTotal.WithLabelValues("query")); got != 2 {
		t.Errorf("measurements_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rec.LastDurationSeconds.WithLabelValues("query")); got != 0.1 {
		t.Errorf("last_duration_seconds = %v, want 0.1 (latest wins)", got)
	}
}

func TestRecorder_ObserveFromCatcher(t *testing.T) {
	rec := NewRecorder(prometheus.NewRegistry())

	clk := clock.NewDeltaClock()
	clk.Load(0, []time.Duration{500 * time.Millisecond})

	c := stopwatch.NewCatcher("work",
		stopwatch.WithStopwatch(stopwatch.New(stopwatch.WithClock(clk))),
		stopwatch.WithObserver(rec),
	)

	if err := c.Measure(func() error {
		clk.Advance()
		return nil
	}); err != nil {
		t.Fatalf("Measure failed: %v", err)
	}

	if got := testutil.ToFloat64(rec.MeasurementsTotal.WithLabelValues("work")); got != 1 {
		t.Errorf("measurements_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rec.LastDurationSeconds.WithLabelValues("work")); got != 0.5 {
		t.Errorf("last_duration_seconds = %v, want 0.5", got)
	}
}
