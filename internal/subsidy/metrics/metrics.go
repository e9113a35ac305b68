package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the subsidy calculator.
type Metrics struct {
	Calculations     prometheus.Counter
	ClampedResults   *prometheus.CounterVec
	ParameterUpdates prometheus.Counter
	AdminRejections  prometheus.Counter
	AdminTransfers   prometheus.Counter
	SubsidyAmount    prometheus.Histogram
}

// New registers the subsidy metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Calculations: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_subsidy_calculations_total",
			Help: "Total number of subsidy calculations",
		}),
		ClampedResults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "benefitd_subsidy_clamped_total",
			Help: "Calculations whose raw value was clamped, by bound",
		}, []string{"bound"}),
		ParameterUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_subsidy_parameter_updates_total",
			Help: "Total number of accepted parameter updates",
		}),
		AdminRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_subsidy_admin_rejections_total",
			Help: "Mutations rejected because the caller was not the admin",
		}),
		AdminTransfers: factory.NewCounter(prometheus.CounterOpts{
			Name: "benefitd_subsidy_admin_transfers_total",
			Help: "Total number of admin transfers",
		}),
		SubsidyAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "benefitd_subsidy_amount",
			Help:    "Distribution of calculated subsidy amounts",
			Buckets: []float64{0, 25, 50, 100, 200, 300, 400, 500, 1000},
		}),
	}
}

// ObserveCalculation records a calculation result. bound is "min", "max" or "".
func (m *Metrics) ObserveCalculation(amount int64, bound string) {
	if m == nil {
		return
	}
	m.Calculations.Inc()
	m.SubsidyAmount.Observe(float64(amount))
	if bound != "" {
		m.ClampedResults.WithLabelValues(bound).Inc()
	}
}

func (m *Metrics) IncrementParameterUpdates() {
	if m == nil {
		return
	}
	m.ParameterUpdates.Inc()
}

func (m *Metrics) IncrementAdminRejections() {
	if m == nil {
		return
	}
	m.AdminRejections.Inc()
}

func (m *Metrics) IncrementAdminTransfers() {
	if m == nil {
		return
	}
	m.AdminTransfers.Inc()
}
