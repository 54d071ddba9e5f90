package observability

import (
	"context"
	"errors"
	"strconv"

	"github.com/aretw0/fundflow/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts engine activity.
type Metrics struct {
	stateEntries *prometheus.CounterVec
	computations *prometheus.HistogramVec
	rejected     *prometheus.CounterVec
	flowErrors   prometheus.Counter
}

// NewMetrics registers the engine collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stateEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundflow_state_entries_total",
			Help: "Number of times each interview state was entered.",
		}, []string{"state"}),
		computations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fundflow_computation_duration_seconds",
			Help:    "Time spent waiting for advisory text in computation states.",
			Buckets: prometheus.DefBuckets,
		}, []string{"state", "degraded"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fundflow_rejected_inputs_total",
			Help: "Inputs rejected in place because they were empty.",
		}, []string{"state", "key"}),
		flowErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fundflow_flow_errors_total",
			Help: "Events that targeted an undefined state.",
		}),
	}
	reg.MustRegister(m.stateEntries, m.computations, m.rejected, m.flowErrors)
	return m
}

// StateEntries exposes the state entry counter.
func (m *Metrics) StateEntries() *prometheus.CounterVec {
	return m.stateEntries
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(_ context.Context, e *domain.StateEvent) {
			m.stateEntries.WithLabelValues(string(e.StateID)).Inc()
		},
		OnAdvisorReturn: func(_ context.Context, e *domain.AdvisorEvent) {
			m.computations.WithLabelValues(string(e.StateID), strconv.FormatBool(e.Degraded)).Observe(e.Duration.Seconds())
		},
		OnValidationError: func(_ context.Context, e *domain.ErrorEvent) {
			key := ""
			var ve *domain.ValidationError
			if errors.As(e.Err, &ve) {
				key = string(ve.Key)
			}
			m.rejected.WithLabelValues(string(e.StateID), key).Inc()
		},
		OnError: func(context.Context, *domain.ErrorEvent) {
			m.flowErrors.Inc()
		},
	}
}
