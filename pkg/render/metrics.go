package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus collectors of a Renderer.
type metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	renderBytes    *prometheus.HistogramVec
}

func newMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of node trees rendered",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed renders by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "code"}),

		renderBytes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_bytes",
			Help:        "Size of rendered markup in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     prometheus.ExponentialBuckets(256, 4, 7), // 256B to 1MB
		}, []string{"page"}),
	}
}
