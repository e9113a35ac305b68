package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Eligibility check outcomes.
const (
	OutcomeEligible   = "eligible"
	OutcomeIneligible = "ineligible"
	OutcomeExpired    = "expired"
	OutcomeNotFound   = "not_found"
)

// Metrics provides observability for the recipient registry.
type Metrics struct {
	Mutations         *prometheus.CounterVec
	EligibilityChecks *prometheus.CounterVec
	AdminRejections   prometheus.Counter
}

// New registers the recipient metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_recipient_mutations_total",
			Help: "Accepted registry mutations by operation",
		}, []string{"operation"}),
		EligibilityChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_recipient_eligibility_checks_total",
			Help: "Eligibility checks by outcome",
		}, []string{"outcome"}),
		AdminRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_recipient_admin_rejections_total",
			Help: "Mutations rejected because the caller was not the admin",
		}),
	}
}

func (m *Metrics) IncrementMutation(operation string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementEligibilityCheck(outcome string) {
	if m == nil {
		return
	}
	m.EligibilityChecks.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementAdminRejections() {
	if m == nil {
		return
	}
	m.AdminRejections.Inc()
}
