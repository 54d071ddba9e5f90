package advisor

import (
	"time"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess  = "success"
	outcomeFallback = "fallback"
	outcomeCached   = "cached"
)

// Metrics records advisor request outcomes.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the advisor collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fundflow_advisor_requests_total",
			Help: "Advisor requests by provider, purpose and outcome.",
		}, []string{"provider", "purpose", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fundflow_advisor_request_duration_seconds",
			Help:    "Time spent producing an advisor reply.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "purpose"}),
	}
}

// Requests exposes the request counter for inspection.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}

func (m *Metrics) observe(provider string, purpose domain.Computation, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(provider, purpose.String(), outcome).Inc()
	m.duration.WithLabelValues(provider, purpose.String()).Observe(d.Seconds())
}
