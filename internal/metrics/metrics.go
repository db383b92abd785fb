package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the application.
type Metrics struct {
	EligibilityEvaluations prometheus.Counter
	EligibilityBlocks      *prometheus.CounterVec
	DonationsSaved         prometheus.Counter
	DonorsCreated          prometheus.Counter
	ImportRows             *prometheus.CounterVec
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers all metrics on the given registerer. Tests pass a
// fresh registry so repeated construction does not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EligibilityEvaluations: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodbank_eligibility_evaluations_total",
			Help: "Total eligibility rule engine evaluations.",
		}),
		EligibilityBlocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_eligibility_blocks_total",
			Help: "Eligibility evaluations that blocked or warned, by rule.",
		}, []string{"rule"}),
		DonationsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodbank_donations_saved_total",
			Help: "Donation records persisted through the interactive path.",
		}),
		DonorsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodbank_donors_created_total",
			Help: "New donor identities created by the registry.",
		}),
		ImportRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodbank_import_rows_total",
			Help: "Bulk import rows processed, by outcome.",
		}, []string{"outcome"}),
	}
}

// RecordVerdict counts one evaluation and, when a rule fired, the rule.
func (m *Metrics) RecordVerdict(rule string) {
	m.EligibilityEvaluations.Inc()
	if rule != "" {
		m.EligibilityBlocks.WithLabelValues(rule).Inc()
	}
}
