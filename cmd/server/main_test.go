package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/adapter/http/middleware"
	"github.com/searn/hubadmin/internal/infrastructure/config"
	"github.com/searn/hubadmin/internal/infrastructure/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		BackendURL:       "http://127.0.0.1:1",
		BackendTimeout:   time.Second,
		HTTPPort:         "9090",
		HTTPReadTimeout:  5 * time.Second,
		HTTPWriteTimeout: 7 * time.Second,
		HTTPIdleTimeout:  11 * time.Second,
		JWTSecret:        "0123456789abcdef0123",
		SessionTTL:       time.Hour,
		RateLimitRPS:     100,
		RateLimitBurst:   100,
		IdempotencyTTL:   time.Hour,
		PlatformCacheTTL: time.Minute,
		AuditMaxEntries:  10,
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig()
	h := http.NewServeMux()

	srv := newHTTPServer(cfg, h)
	if srv.Addr != ":9090" {
		t.Fatalf("addr = %q", srv.Addr)
	}
	if srv.ReadTimeout != 5*time.Second || srv.ReadHeaderTimeout != 5*time.Second {
		t.Fatalf("read timeouts = %v/%v", srv.ReadTimeout, srv.ReadHeaderTimeout)
	}
	if srv.WriteTimeout != 7*time.Second {
		t.Fatalf("write timeout = %v", srv.WriteTimeout)
	}
	if srv.IdleTimeout != 11*time.Second {
		t.Fatalf("idle timeout = %v", srv.IdleTimeout)
	}
}

func TestNewHandlerServesHealthChecks(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := metrics.NewWithRegisterer(prometheus.NewRegistry())
	limiter := middleware.NewRateLimiter(100, 100, m.RateLimitHits)
	h := newHandler(testConfig(), zerolog.Nop(), client, m, limiter)

	tests := []struct {
		path string
		want int
	}{
		{"/health", http.StatusOK},
		{"/ready", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/merchants", http.StatusUnauthorized},
		{"/api/v1/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
		}
	}

	mr.Close()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready with redis down = %d", rec.Code)
	}
}
