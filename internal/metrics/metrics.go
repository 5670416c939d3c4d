package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeFound  = "found"
	OutcomeAbsent = "absent"
	OutcomeError  = "error"
)

// Metrics holds the Prometheus collectors for validations and postal lookups.
type Metrics struct {
	Validations    *prometheus.CounterVec
	LookupRequests *prometheus.CounterVec
	LookupDuration prometheus.Histogram
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brdocs_validations_total",
			Help: "Total number of document validations, labeled by document and result",
		}, []string{"document", "result"}),
		LookupRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "brdocs_lookup_requests_total",
			Help: "Total number of postal lookups, labeled by outcome",
		}, []string{"outcome"}),
		LookupDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "brdocs_lookup_duration_seconds",
			Help:    "Latency of postal lookups in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveValidation counts one validation. result is "valid", "invalid" or "error".
func (m *Metrics) ObserveValidation(document, result string) {
	m.Validations.WithLabelValues(document, result).Inc()
}
