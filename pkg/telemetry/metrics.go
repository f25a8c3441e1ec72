package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BYTE-6D65/elapse/pkg/stopwatch"
)

// Recorder exports captured measurements as Prometheus metrics. It
// implements stopwatch.Observer, so it plugs into a Catcher via
// stopwatch.WithObserver.
//
// Only a count and the latest value are exported. Histograms and
// percentile summaries are intentionally absent.
type Recorder struct {
	// MeasurementsTotal counts completed measurements per timer name
	MeasurementsTotal *prometheus.CounterVec

	// LastDurationSeconds holds the most recent measurement per timer name
	LastDurationSeconds *prometheus.GaugeVec
}

// NewRecorder creates a Recorder registered against the given
// registerer. A nil registerer falls back to the default one.
func NewRecorder(registry prometheus.Registerer) *Recorder {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	return &Recorder{
		MeasurementsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "elapse_measurements_total",
				Help: "Total number of completed elapsed-time measurements",
			},
			[]string{"name"},
		),

		LastDurationSeconds: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "elapse_last_duration_seconds",
				Help: "Duration of the most recent measurement, in seconds",
			},
			[]string{"name"},
		),
	}
}

// Observe records one completed capture.
func (r *Recorder) Observe(name string, c stopwatch.Capture) {
	r.MeasurementsTotal.WithLabelValues(name).Inc()
	r.LastDurationSeconds.WithLabelValues(name).Set(c.Elapsed.Seconds())
}
