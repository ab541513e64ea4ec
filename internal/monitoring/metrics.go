package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics recorded per outbound operation.
type Metrics struct {
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
}

// NewMetrics creates and registers the SDK metrics against the given
// registerer. Pass prometheus.DefaultRegisterer for process-wide metrics, or
// a private registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "rai_requests_total",
				Help: "Total number of API operations issued.",
			},
			[]string{"operation", "result"},
		),
		Latency: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rai_request_latency_seconds",
				Help:    "Latency of API operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRequest records metrics for one completed operation.
func (m *Metrics) RecordRequest(operation, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(operation, result).Inc()
	m.Latency.WithLabelValues(operation).Observe(duration.Seconds())
}
