package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/adapter/backend"
	"github.com/searn/hubadmin/internal/adapter/http/handler"
	apimiddleware "github.com/searn/hubadmin/internal/adapter/http/middleware"
	"github.com/searn/hubadmin/internal/infrastructure/auth"
	"github.com/searn/hubadmin/internal/usecase"
	"github.com/searn/hubadmin/internal/usecase/mocks"
)

// fakeBackend answers the few remote API calls the router tests make.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token":"remote-token","user":{"_id":"u1","email":"owner@hub.io","role":"store_admin","merchantId":"M1"}}`)
	})
	mux.HandleFunc("GET /merchants", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer remote-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `[{"_id":"M1","name":"Hub One"},{"_id":"M2","name":"Hub Two"}]`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newRouterConfig(t *testing.T, opts ...func(*RouterConfig)) RouterConfig {
	t.Helper()

	client := backend.New(backend.Config{BaseURL: fakeBackend(t).URL, Timeout: 2 * time.Second})
	jwtManager := auth.NewJWTManager("router-test-secret-0123", time.Hour)
	sessions := mocks.NewMemorySessionStore()

	authUC := usecase.NewAuthUseCase(client, sessions, jwtManager, &mocks.StaticIDGenerator{IDs: []string{"sess-1", "sess-2"}}, time.Hour)
	accessUC := usecase.NewAccessUseCase(nil, nil, mocks.NewMemoryAuditLog())
	consoleUC := usecase.NewConsoleUseCase(client, accessUC)

	cfg := RouterConfig{
		Logger:           zerolog.Nop(),
		AuthHandler:      handler.NewAuthHandler(authUC, nil),
		PolicyHandler:    handler.NewPolicyHandler(accessUC),
		MerchantHandler:  handler.NewMerchantHandler(consoleUC),
		UserHandler:      handler.NewUserHandler(consoleUC),
		BlockedIPHandler: handler.NewBlockedIPHandler(consoleUC),
		CatalogHandler:   handler.NewCatalogHandler(consoleUC),
		HealthHandler:    handler.NewHealthHandler(handler.PingFunc(func(ctx context.Context) error { return nil })),
		Tokens:           jwtManager,
		Sessions:         authUC,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"owner@hub.io","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return resp.Token
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RejectsAnonymousConsoleRequests(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/merchants", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestNewRouter_LoginThenListScopedMerchants(t *testing.T) {
	router := NewRouter(newRouterConfig(t))
	token := login(t, router)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/merchants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Items []struct {
			Item struct {
				ID string `json:"_id"`
			} `json:"item"`
			Actions []string `json:"actions"`
		} `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Item.ID != "M1" {
		t.Fatalf("expected only the caller's hub, got %+v", resp.Items)
	}
}

func TestNewRouter_LogoutInvalidatesToken(t *testing.T) {
	router := NewRouter(newRouterConfig(t))
	token := login(t, router)

	logout := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	logout.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, logout)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	me := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	me.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, me)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected token to stop working after logout, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1, nil)
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

type stubIdempotencyStore struct {
	reserved []string
}

func (s *stubIdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (*usecase.IdempotentReply, bool, error) {
	s.reserved = append(s.reserved, key)
	return nil, true, nil
}

func (s *stubIdempotencyStore) Complete(ctx context.Context, key string, reply *usecase.IdempotentReply, ttl time.Duration) error {
	return nil
}

func (s *stubIdempotencyStore) Release(ctx context.Context, key string) error {
	return nil
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(t, func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))
	token := login(t, router)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/policy/scope", strings.NewReader(`{"owner":"M1"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if len(store.reserved) != 1 || !strings.HasPrefix(store.reserved[0], "u1:") {
		t.Fatalf("expected a user-scoped reservation, got %v", store.reserved)
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig(t))

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"GET /api/v1/policy/roles/{role}",
		"POST /api/v1/policy/check",
		"POST /api/v1/policy/scope",
		"GET /api/v1/merchants/",
		"GET /api/v1/merchants/balance",
		"PATCH /api/v1/merchants/{id}/withdrawals",
		"POST /api/v1/users/{id}/change-password",
		"POST /api/v1/blocked-ips/quick",
		"GET /api/v1/platforms/options",
		"GET /api/v1/transactions/export",
		"GET /api/v1/reports/hubs",
		"GET /api/v1/dashboard/stats",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}
