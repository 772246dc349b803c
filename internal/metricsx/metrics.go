// Package metricsx exposes the coarse Prometheus counters and gauges for the
// FrameManager/WaveGenerator boundary: frame traffic in and render output
// out. It deliberately stays above the sample-rate signal path itself —
// nothing here is on the per-sample hot loop.
package metricsx

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesEnqueued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "manatu_frames_enqueued_total",
		Help: "Total number of frame requests enqueued onto a FrameManager.",
	}, []string{"kind"}) // kind: "voiced", "null"

	FramesPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manatu_frames_purged_total",
		Help: "Total number of purge-enqueues, which discard the pending queue.",
	})

	QueueUnderflows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manatu_queue_underflows_total",
		Help: "Total number of times the frame queue ran dry mid-render.",
	})

	SamplesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manatu_samples_rendered_total",
		Help: "Total number of PCM samples produced by WaveGenerator.Generate.",
	})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "manatu_render_duration_seconds",
		Help:    "Wall-clock time spent inside a single Generate call.",
		Buckets: prometheus.DefBuckets,
	})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "manatu_active_sessions",
		Help: "Number of currently-open klattd streaming sessions.",
	})
)

// ObserveRender records the duration and sample count of one Generate call.
func ObserveRender(start time.Time, samples int) {
	RenderDuration.Observe(time.Since(start).Seconds())
	SamplesRendered.Add(float64(samples))
}
