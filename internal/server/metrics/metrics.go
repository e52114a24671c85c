// Package metrics holds the Prometheus collectors of the policydesk server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks admin workflow outcomes and request durations per transport.
type Metrics struct {
	PartnersCreated   prometheus.Counter
	PoliciesAdded     prometheus.Counter
	RejectedInputs    *prometheus.CounterVec
	ReportsExported   prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
	HighlightedOnList prometheus.Gauge
}

// New registers all collectors with reg. Pass prometheus.DefaultRegisterer in
// the server and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		PartnersCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "policydesk_partners_created_total",
			Help: "Total number of partners created",
		}),
		PoliciesAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "policydesk_policies_added_total",
			Help: "Total number of policies added to partners",
		}),
		RejectedInputs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "policydesk_rejected_inputs_total",
			Help: "Create requests rejected with field errors, by operation and field",
		}, []string{"operation", "field"}),
		ReportsExported: f.NewCounter(prometheus.CounterOpts{
			Name: "policydesk_reports_exported_total",
			Help: "Total number of partner reports uploaded to object storage",
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "policydesk_request_duration_seconds",
			Help:    "Duration of admin API requests",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"transport", "operation", "code"}),
		HighlightedOnList: f.NewGauge(prometheus.GaugeOpts{
			Name: "policydesk_highlighted_partners",
			Help: "Highlighted partners in the most recent partner list",
		}),
	}
}

func (m *Metrics) IncrementPartnersCreated() {
	m.PartnersCreated.Inc()
}

func (m *Metrics) IncrementPoliciesAdded() {
	m.PoliciesAdded.Inc()
}

// IncrementRejected records one rejected field of a create operation.
func (m *Metrics) IncrementRejected(operation, field string) {
	m.RejectedInputs.WithLabelValues(operation, field).Inc()
}

func (m *Metrics) IncrementReportsExported() {
	m.ReportsExported.Inc()
}

func (m *Metrics) SetHighlighted(n int) {
	m.HighlightedOnList.Set(float64(n))
}

// ObserveRequest records the duration of a request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(transport, operation, code string, start time.Time) {
	m.RequestDuration.WithLabelValues(transport, operation, code).Observe(time.Since(start).Seconds())
}
