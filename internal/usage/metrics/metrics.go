package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the usage monitor.
type Metrics struct {
	Mutations       *prometheus.CounterVec
	ExcessChecks    *prometheus.CounterVec
	ExcessFlags     *prometheus.CounterVec
	AlertFailures   prometheus.Counter
	AdminRejections prometheus.Counter
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_usage_mutations_total",
			Help: "Accepted usage mutations by operation",
		}, []string{"operation"}),
		ExcessChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_usage_excess_checks_total",
			Help: "Excess checks by outcome (flagged, clear)",
		}, []string{"outcome"}),
		ExcessFlags: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_usage_excess_flags_total",
			Help: "Utilities flagged as excessive",
		}, []string{"utility"}),
		AlertFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_usage_alert_failures_total",
			Help: "Excess alerts that could not be published",
		}),
		AdminRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_usage_admin_rejections_total",
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

// ObserveCheck records one excess check and each flagged utility.
func (m *Metrics) ObserveCheck(flagged []string) {
	if m == nil {
		return
	}
	if len(flagged) == 0 {
		m.ExcessChecks.WithLabelValues("clear").Inc()
		return
	}
	m.ExcessChecks.WithLabelValues("flagged").Inc()
	for _, u := range flagged {
		m.ExcessFlags.WithLabelValues(u).Inc()
	}
}

func (m *Metrics) IncrementAlertFailures() {
	if m == nil {
		return
	}
	m.AlertFailures.Inc()
}

func (m *Metrics) IncrementAdminRejections() {
	if m == nil {
		return
	}
	m.AdminRejections.Inc()
}
