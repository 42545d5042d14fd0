package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/searn/hubadmin/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Access decisions
	Decisions *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter

	// Idempotency metrics
	IdempotentReplays prometheus.Counter
}

// New registers all metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers all metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Decisions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubadmin_access_decisions_total",
				Help: "Access gate decisions by resource, action and outcome",
			},
			[]string{"resource", "action", "outcome"},
		),

		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubadmin_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hubadmin_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "hubadmin_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		AuthAttempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hubadmin_auth_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),

		RateLimitHits: f.NewCounter(prometheus.CounterOpts{
			Name: "hubadmin_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		}),

		IdempotentReplays: f.NewCounter(prometheus.CounterOpts{
			Name: "hubadmin_idempotent_replays_total",
			Help: "Mutations answered from a stored reply",
		}),
	}
}

// RecordDecision counts one gate decision.
func (m *Metrics) RecordDecision(resource domain.Resource, action domain.Action, allowed bool) {
	outcome := domain.OutcomeDeny
	if allowed {
		outcome = domain.OutcomeAllow
	}
	m.Decisions.WithLabelValues(string(resource), string(action), outcome).Inc()
}

// RecordLogin counts one login attempt.
func (m *Metrics) RecordLogin(ok bool) {
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.AuthAttempts.WithLabelValues(outcome).Inc()
}
