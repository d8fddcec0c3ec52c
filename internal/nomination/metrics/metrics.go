package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the nomination module.
// All methods are safe on a nil receiver so tests can omit metrics.
type Metrics struct {
	// Backend call latency by endpoint and outcome
	BrokerageLatency *prometheus.HistogramVec

	// Validation runs by result ("valid", "invalid")
	ValidationOutcome *prometheus.CounterVec

	// Submission results per section ("nominees", "poas", "holders")
	SectionOutcome *prometheus.CounterVec

	// Submissions where some sections persisted and others failed
	PartialSubmissions prometheus.Counter

	// Overall submit latency including the parallel backend writes
	SubmitLatency prometheus.Histogram

	// Draft lookups by result ("hit", "miss")
	DraftLookups *prometheus.CounterVec
}

// New registers the nomination metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the nomination metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BrokerageLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dematkyc_brokerage_call_duration_seconds",
			Help:    "Duration of brokerage backend calls by endpoint and outcome",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"endpoint", "outcome"}),

		ValidationOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dematkyc_validations_total",
			Help: "Total submission validations by result",
		}, []string{"result"}),

		SectionOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dematkyc_submission_sections_total",
			Help: "Total submitted sections by section and result",
		}, []string{"section", "result"}),

		PartialSubmissions: f.NewCounter(prometheus.CounterOpts{
			Name: "dematkyc_partial_submissions_total",
			Help: "Submissions that persisted some sections while others failed",
		}),

		SubmitLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "dematkyc_submit_duration_seconds",
			Help:    "Duration of full submissions including backend writes",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),

		DraftLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "dematkyc_draft_lookups_total",
			Help: "Total draft lookups by result",
		}, []string{"result"}),
	}
}

// ObserveBrokerageCall records one backend call.
func (m *Metrics) ObserveBrokerageCall(endpoint, outcome string, d time.Duration) {
	if m != nil {
		m.BrokerageLatency.WithLabelValues(endpoint, outcome).Observe(d.Seconds())
	}
}

// IncrementValidation records a validation run.
func (m *Metrics) IncrementValidation(valid bool) {
	if m == nil {
		return
	}
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.ValidationOutcome.WithLabelValues(result).Inc()
}

// IncrementSection records the result of one submitted section.
func (m *Metrics) IncrementSection(section string, ok bool) {
	if m == nil {
		return
	}
	result := "failed"
	if ok {
		result = "ok"
	}
	m.SectionOutcome.WithLabelValues(section, result).Inc()
}

// IncrementPartial records a partially persisted submission.
func (m *Metrics) IncrementPartial() {
	if m != nil {
		m.PartialSubmissions.Inc()
	}
}

// ObserveSubmitLatency records the total submit duration.
func (m *Metrics) ObserveSubmitLatency(d time.Duration) {
	if m != nil {
		m.SubmitLatency.Observe(d.Seconds())
	}
}

// IncrementDraftLookup records a draft cache lookup.
func (m *Metrics) IncrementDraftLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.DraftLookups.WithLabelValues(result).Inc()
}
