package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/searn/hubadmin/internal/adapter/backend"
	httpAdapter "github.com/searn/hubadmin/internal/adapter/http"
	"github.com/searn/hubadmin/internal/adapter/http/handler"
	"github.com/searn/hubadmin/internal/adapter/http/middleware"
	redisRepo "github.com/searn/hubadmin/internal/adapter/repository/redis"
	"github.com/searn/hubadmin/internal/infrastructure/auth"
	"github.com/searn/hubadmin/internal/infrastructure/config"
	"github.com/searn/hubadmin/internal/infrastructure/idgen"
	"github.com/searn/hubadmin/internal/infrastructure/logger"
	"github.com/searn/hubadmin/internal/infrastructure/metrics"
	"github.com/searn/hubadmin/internal/infrastructure/redis"
	"github.com/searn/hubadmin/internal/policy"
	"github.com/searn/hubadmin/internal/usecase"
)

const limiterCleanupInterval = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	logr := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = logr

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logr); err != nil {
		logr.Fatal().Err(err).Msg("server failed")
	}
	logr.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logr zerolog.Logger) error {
	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	logr.Info().Msg("connected to redis")

	m := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m.RateLimitHits)
	go limiter.Run(ctx, limiterCleanupInterval)

	server := newHTTPServer(cfg, newHandler(cfg, logr, redisClient, m, limiter))

	errCh := make(chan error, 1)
	go func() {
		logr.Info().
			Str("port", cfg.HTTPPort).
			Str("backend", cfg.BackendURL).
			Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logr.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// newHandler wires the backend client, redis stores, use cases and handlers
// into the console router.
func newHandler(cfg *config.Config, logr zerolog.Logger, redisClient *goredis.Client, m *metrics.Metrics, limiter *middleware.RateLimiter) http.Handler {
	// Initialize adapters
	client := backend.New(backend.Config{
		BaseURL:   cfg.BackendURL,
		Timeout:   cfg.BackendTimeout,
		UserAgent: "hubadmin",
	})
	sessions := redisRepo.NewSessionStore(redisClient)
	decisions := redisRepo.NewDecisionLog(redisClient, cfg.AuditMaxEntries)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	// Initialize use cases
	authUC := usecase.NewAuthUseCase(client, sessions, jwtManager, idgen.NewULIDGenerator(), cfg.SessionTTL)
	accessUC := usecase.NewAccessUseCase(policy.DefaultGate{}, m, decisions)
	consoleUC := usecase.NewConsoleUseCase(client, accessUC).
		WithCache(redisRepo.NewCache(redisClient), cfg.PlatformCacheTTL)

	return httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Logger:           logr,
		AuthHandler:      handler.NewAuthHandler(authUC, m),
		PolicyHandler:    handler.NewPolicyHandler(accessUC),
		MerchantHandler:  handler.NewMerchantHandler(consoleUC),
		UserHandler:      handler.NewUserHandler(consoleUC),
		BlockedIPHandler: handler.NewBlockedIPHandler(consoleUC),
		CatalogHandler:   handler.NewCatalogHandler(consoleUC),
		HealthHandler: handler.NewHealthHandler(handler.PingFunc(func(ctx context.Context) error {
			return redis.Ping(ctx, redisClient)
		})),
		Tokens:           jwtManager,
		Sessions:         authUC,
		RateLimiter:      limiter,
		IdempotencyStore: redisRepo.NewIdempotencyStore(redisClient),
		IdempotencyTTL:   cfg.IdempotencyTTL,
		Metrics:          m,
		MetricsHandler:   promhttp.Handler(),
	})
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           h,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}
}
