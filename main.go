// Command landing serves the landing page and its wallet-aware navbar.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/emergentai/landing/internal/config"
	"github.com/emergentai/landing/internal/handlers"
	"github.com/emergentai/landing/internal/ratelimit"
	"github.com/emergentai/landing/internal/scheduler"
	"github.com/emergentai/landing/internal/server"
	"github.com/emergentai/landing/internal/tracing"
	"github.com/emergentai/landing/internal/wallet"
	"github.com/emergentai/landing/pkg/logger"
)

func main() {
	// Load won't overwrite existing vars, Overload lets .env.local win.
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,
		tracing.Module,
		server.Module,

		wallet.Module,
		ratelimit.Module,
		handlers.Module,
		scheduler.Module,
	)
}
