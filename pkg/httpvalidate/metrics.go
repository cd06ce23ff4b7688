package httpvalidate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/apivalidate/pkg/validator"
)

// Metrics holds the Prometheus collectors for request and response validation.
// A nil *Metrics records nothing.
type Metrics struct {
	requests           *prometheus.CounterVec
	violations         *prometheus.CounterVec
	responses          *prometheus.CounterVec
	validationDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apivalidate_requests_total",
				Help: "Total number of validated requests by route and result",
			},
			[]string{"route", "result"},
		),

		violations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apivalidate_violations_total",
				Help: "Total number of field violations by route and location",
			},
			[]string{"route", "location"},
		),

		responses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apivalidate_responses_total",
				Help: "Total number of validated responses by route and result",
			},
			[]string{"route", "result"},
		),

		validationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apivalidate_request_validation_duration_seconds",
				Help:    "Duration of request validation in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 12), // 10µs to 20ms
			},
			[]string{"route"},
		),
	}
}

// RecordRequest records one request validation pass and its violations.
func (m *Metrics) RecordRequest(route string, errs validator.ValidationErrors, seconds float64) {
	if m == nil {
		return
	}

	m.validationDuration.WithLabelValues(route).Observe(seconds)
	if len(errs) == 0 {
		m.requests.WithLabelValues(route, "valid").Inc()
		return
	}

	m.requests.WithLabelValues(route, "invalid").Inc()
	for _, e := range errs {
		m.violations.WithLabelValues(route, string(e.Location)).Inc()
	}
}

// RecordMalformed records a request rejected before rule evaluation.
func (m *Metrics) RecordMalformed(route string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, "malformed").Inc()
}

// RecordResponse records one response validation.
func (m *Metrics) RecordResponse(route string, valid bool) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.responses.WithLabelValues(route, result).Inc()
}
