package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/searn/hubadmin/internal/adapter/http/handler"
	"github.com/searn/hubadmin/internal/adapter/http/middleware"
	"github.com/searn/hubadmin/internal/infrastructure/metrics"
	"github.com/searn/hubadmin/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	Logger zerolog.Logger

	AuthHandler      *handler.AuthHandler
	PolicyHandler    *handler.PolicyHandler
	MerchantHandler  *handler.MerchantHandler
	UserHandler      *handler.UserHandler
	BlockedIPHandler *handler.BlockedIPHandler
	CatalogHandler   *handler.CatalogHandler
	HealthHandler    *handler.HealthHandler

	Tokens   middleware.TokenVerifier
	Sessions middleware.SessionResolver

	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	Metrics          *metrics.Metrics
	MetricsHandler   http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestContext(cfg.Logger))
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", cfg.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.Tokens, cfg.Sessions))

			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotency := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, replayCounter(cfg.Metrics))
				r.Use(idempotency.Wrap)
			}

			// Session
			r.Route("/auth", func(r chi.Router) {
				r.Post("/logout", cfg.AuthHandler.Logout)
				r.Get("/me", cfg.AuthHandler.Me)
				r.Post("/change-password", cfg.AuthHandler.ChangePassword)
			})

			// Policy
			r.Route("/policy", func(r chi.Router) {
				r.Get("/roles", cfg.PolicyHandler.Roles)
				r.Get("/roles/{role}", cfg.PolicyHandler.Capabilities)
				r.Post("/check", cfg.PolicyHandler.Check)
				r.Post("/scope", cfg.PolicyHandler.Scope)
				r.Get("/decisions", cfg.PolicyHandler.Decisions)
			})

			// Hubs
			r.Route("/merchants", func(r chi.Router) {
				r.Get("/", cfg.MerchantHandler.List)
				r.Post("/", cfg.MerchantHandler.Create)
				r.Get("/balance", cfg.MerchantHandler.Balance)
				r.Post("/deposit", cfg.MerchantHandler.Deposit)
				r.Post("/withdraw", cfg.MerchantHandler.Withdraw)
				r.Get("/{id}", cfg.MerchantHandler.Get)
				r.Put("/{id}", cfg.MerchantHandler.Update)
				r.Delete("/{id}", cfg.MerchantHandler.Delete)
				r.Put("/{id}/disabled", cfg.MerchantHandler.SetDisabled)
				r.Patch("/{id}/withdrawals", cfg.MerchantHandler.SetWithdrawals)
			})

			// Console users
			r.Route("/users", func(r chi.Router) {
				r.Get("/", cfg.UserHandler.List)
				r.Post("/", cfg.UserHandler.Create)
				r.Put("/{id}", cfg.UserHandler.Update)
				r.Delete("/{id}", cfg.UserHandler.Delete)
				r.Post("/{id}/change-password", cfg.UserHandler.ChangePassword)
			})

			// IP blocks
			r.Route("/blocked-ips", func(r chi.Router) {
				r.Get("/", cfg.BlockedIPHandler.List)
				r.Post("/", cfg.BlockedIPHandler.Create)
				r.Post("/quick", cfg.BlockedIPHandler.QuickBlock)
				r.Put("/{id}", cfg.BlockedIPHandler.Update)
				r.Delete("/{id}", cfg.BlockedIPHandler.Delete)
			})

			// Platforms
			r.Route("/platforms", func(r chi.Router) {
				r.Get("/", cfg.CatalogHandler.Platforms)
				r.Get("/options", cfg.CatalogHandler.PlatformOptions)
				r.Post("/", cfg.CatalogHandler.CreatePlatform)
				r.Put("/{id}", cfg.CatalogHandler.RenamePlatform)
				r.Delete("/{id}", cfg.CatalogHandler.DeletePlatform)
			})

			r.Get("/transactions", cfg.CatalogHandler.Transactions)
			r.Get("/transactions/export", cfg.CatalogHandler.ExportTransactions)
			r.Get("/activity-logs", cfg.CatalogHandler.ActivityLogs)
			r.Get("/reports/hubs", cfg.CatalogHandler.HubReport)
			r.Get("/dashboard/stats", cfg.CatalogHandler.DashboardStats)
		})
	})

	return r
}

func replayCounter(m *metrics.Metrics) prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.IdempotentReplays
}
