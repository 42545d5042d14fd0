package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "hits"})
	rl := NewRateLimiter(0.001, 2, hits)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
	if got := testutil.ToFloat64(hits); got != 1 {
		t.Fatalf("expected 1 hit counted, got %v", got)
	}

	// another client keeps its own budget
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected second client allowed, got %d", rec.Code)
	}
}

func TestGetIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:4242"
	if got := getIP(req); got != "192.0.2.10" {
		t.Fatalf("expected host without port, got %q", got)
	}

	req.Header.Set("X-Real-IP", "198.51.100.7")
	if got := getIP(req); got != "198.51.100.7" {
		t.Fatalf("expected X-Real-IP, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1")
	if got := getIP(req); got != "203.0.113.5" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestCleanupLimitersDropsIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10, nil)
	rl.now = func() time.Time { return now }

	rl.getLimiter("old")
	now = now.Add(2 * time.Hour)
	rl.getLimiter("fresh")

	rl.CleanupLimiters(time.Hour)

	if _, ok := rl.visitors["old"]; ok {
		t.Fatalf("expected idle limiter removed")
	}
	if _, ok := rl.visitors["fresh"]; !ok {
		t.Fatalf("expected recent limiter kept")
	}
}
