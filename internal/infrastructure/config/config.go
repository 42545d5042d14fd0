package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration.
type Config struct {
	// Remote hub API
	BackendURL     string        `env:"BACKEND_URL"     envDefault:"http://localhost:5000/api" validate:"required,url"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"15s"                       validate:"gt=0"`

	// Redis
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379" validate:"required"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080" validate:"required,numeric"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`

	// Sessions
	JWTSecret  string        `env:"JWT_SECRET"  validate:"required,min=16"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"12h" validate:"gt=0"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20" validate:"gt=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40" validate:"gt=0"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Caching and audit
	PlatformCacheTTL time.Duration `env:"PLATFORM_CACHE_TTL" envDefault:"5m"`
	AuditMaxEntries  int           `env:"AUDIT_MAX_ENTRIES"  envDefault:"10000" validate:"gte=0"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
