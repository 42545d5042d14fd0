package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/searn/hubadmin/internal/domain"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := NewWithRegisterer(registry)
	if m.Decisions == nil || m.HTTPRequests == nil || m.AuthAttempts == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.HTTPInFlight.Set(1)
	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestRecordDecision(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.RecordDecision(domain.ResourceUser, domain.ActionDelete, false)
	m.RecordDecision(domain.ResourceUser, domain.ActionDelete, false)
	m.RecordDecision(domain.ResourceUser, domain.ActionView, true)

	if got := testutil.ToFloat64(m.Decisions.WithLabelValues("user", "delete", "deny")); got != 2 {
		t.Fatalf("expected 2 denials, got %v", got)
	}
	if got := testutil.ToFloat64(m.Decisions.WithLabelValues("user", "view", "allow")); got != 1 {
		t.Fatalf("expected 1 allow, got %v", got)
	}
}

func TestRecordLogin(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.RecordLogin(true)
	m.RecordLogin(false)
	m.RecordLogin(false)

	if got := testutil.ToFloat64(m.AuthAttempts.WithLabelValues("failure")); got != 2 {
		t.Fatalf("expected 2 failures, got %v", got)
	}
}
