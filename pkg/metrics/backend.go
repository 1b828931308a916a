package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BackendRecorder tracks calls made to the prediction backend.
type BackendRecorder struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewBackendRecorder registers the backend collectors on reg.
func NewBackendRecorder(reg prometheus.Registerer) *BackendRecorder {
	factory := promauto.With(reg)
	return &BackendRecorder{
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astropredict_backend_calls_total",
				Help: "Total number of calls made to the prediction backend",
			},
			[]string{"endpoint", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astropredict_backend_call_duration_seconds",
				Help:    "Duration of prediction backend calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
	}
}

// ObserveBackendCall records one finished call.
func (r *BackendRecorder) ObserveBackendCall(endpoint, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(endpoint, outcome).Inc()
	r.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
