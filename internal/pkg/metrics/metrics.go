package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bscscan_node"

// Outcome labels.
const (
	OutcomeSuccess = "success"
)

// ActionMetrics holds the collectors recorded per action invocation.
type ActionMetrics struct {
	Executions *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Records    *prometheus.HistogramVec
}

// NewActionMetrics creates the collectors and registers them with reg.
func NewActionMetrics(reg prometheus.Registerer) (*ActionMetrics, error) {
	m := &ActionMetrics{
		Executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "action_executions_total",
			Help:      "Action invocations by operation, network and outcome (success or error kind).",
		}, []string{"operation", "network", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Wall time of an action invocation including the upstream call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "network"}),
		Records: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_envelope_records",
			Help:      "Number of records in successful result envelopes.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.Executions, m.Duration, m.Records} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustRegisterMetrics registers the action collectors with the default registry.
func MustRegisterMetrics() *ActionMetrics {
	m, err := NewActionMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		panic(err)
	}
	return m
}
