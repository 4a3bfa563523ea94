package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"GO_ENV" envDefault:"development"` // also read by pkg/logger

	Site      SiteConfig
	Wallet    WalletConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	Otel      OtelConfig

	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"0s"` // menu streams stay open
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig holds the page metadata rendered into the document head.
type SiteConfig struct {
	Title       string `env:"SITE_TITLE" envDefault:"Landing"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Projects, people and how it works."`
}

// WalletConfig configures the browser wallet library mounted by the connect button.
type WalletConfig struct {
	// ClientID is handed to the browser library as-is.
	ClientID string `env:"WALLET_CLIENT_ID"`

	// ScriptURL loads the browser library. Empty leaves the mount point inert.
	ScriptURL string `env:"WALLET_SCRIPT_URL"`

	Theme string `env:"WALLET_THEME" envDefault:"dark"`

	// StatusEvent is the DOM event the library, or a shim around it,
	// dispatches on the mount point with the status in detail.status.
	StatusEvent string `env:"WALLET_STATUS_EVENT" envDefault:"wallet:status"`
}

// SessionConfig controls the cookie that ties a browser to its wallet status.
type SessionConfig struct {
	CookieName        string        `env:"SESSION_COOKIE_NAME" envDefault:"landing_session"`
	IdleTimeout       time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SweepInterval     time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	KeepAliveInterval time.Duration `env:"SSE_KEEPALIVE_INTERVAL" envDefault:"15s"`
	Secure            bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
}

// RateLimitConfig throttles status reports per session. PerMinute 0 disables it.
type RateLimitConfig struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// OtelConfig holds OpenTelemetry configuration.
// Tracing is disabled when ExporterEndpoint is empty.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName      string  `env:"OTEL_SERVICE_NAME" envDefault:"landing"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.ServerAddress, strconv.Itoa(c.ServerPort))
}

// IsProduction reports whether GO_ENV is production. The logger switches to
// JSON on the same variable; production also forces Secure session cookies.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NewConfig parses the environment into a Config.
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.String("addr", cfg.Addr()),
		slog.Bool("wallet_script", cfg.Wallet.ScriptURL != ""),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid WEBSITE_PORT %d", c.ServerPort)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.RateLimit.PerMinute < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must not be negative")
	}
	if c.Session.KeepAliveInterval <= 0 {
		return fmt.Errorf("SSE_KEEPALIVE_INTERVAL must be positive")
	}
	return nil
}
