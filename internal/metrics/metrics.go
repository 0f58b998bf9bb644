package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"whatsapp-studio/internal/template"
)

const (
	median = 0.5
	p90    = 0.9
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p99Error    = 0.001

	maxAgeDuration = 5 * time.Minute
)

// Metrics collects template validation and submission statistics.
type Metrics struct {
	validations    *prometheus.CounterVec
	fieldErrors    *prometheus.CounterVec
	submitCounter  *prometheus.CounterVec
	submitDuration *prometheus.SummaryVec
	sessions       prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	validations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_validations_total",
			Help: "Template drafts validated, by source and outcome.",
		},
		[]string{"source", "outcome"},
	)
	fieldErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_field_errors_total",
			Help: "Validation errors reported per draft field.",
		},
		[]string{"field"},
	)
	submitCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "template_submissions_total",
			Help: "Template creation requests sent to the Graph API, by outcome.",
		},
		[]string{"category", "outcome"},
	)
	submitDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "template_submission_duration_seconds",
			Help: "Latency of template creation requests.",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"outcome"},
	)
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "template_wizard_sessions",
		Help: "Wizard sessions currently held in memory.",
	})

	reg.MustRegister(validations, fieldErrors, submitCounter, submitDuration, sessions)

	return &Metrics{
		validations:    validations,
		fieldErrors:    fieldErrors,
		submitCounter:  submitCounter,
		submitDuration: submitDuration,
		sessions:       sessions,
	}
}

// ObserveValidation counts one validation run and its failing fields.
func (m *Metrics) ObserveValidation(source string, res template.Result) {
	outcome := "valid"
	if !res.Valid() {
		outcome = "invalid"
	}
	m.validations.WithLabelValues(source, outcome).Inc()
	for _, f := range res.Fields() {
		m.fieldErrors.WithLabelValues(f).Inc()
	}
}

func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

// Submitter wraps a template.Submitter and records every call.
type Submitter struct {
	next    template.Submitter
	metrics *Metrics
}

func (m *Metrics) Submitter(next template.Submitter) *Submitter {
	return &Submitter{next: next, metrics: m}
}

func (s *Submitter) SubmitTemplate(ctx context.Context, p template.Payload) (*template.Submission, error) {
	start := time.Now()
	sub, err := s.next.SubmitTemplate(ctx, p)
	outcome := "created"
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = "canceled"
	case err != nil:
		outcome = "failed"
	}
	s.metrics.submitCounter.WithLabelValues(string(p.Category), outcome).Inc()
	s.metrics.submitDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	return sub, err
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
