package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/emergentai/landing/internal/components"
	"github.com/emergentai/landing/internal/config"
	"github.com/emergentai/landing/internal/ratelimit"
	"github.com/emergentai/landing/internal/wallet"
)

var Module = fx.Module("handlers",
	fx.Provide(
		NewHandler,
		NewHealthHandler,
	),
	fx.Invoke(RegisterRoutes),
)

const (
	MenuPath       = "/navbar/menu"
	MenuStreamPath = "/navbar/menu/stream"
)

// RegisterRoutes mounts the page and navbar routes. Everything that depends on
// the wallet session sits behind the session middleware. Status reports are
// throttled per session; search never is, so every submission still answers
// 204 and logs once.
func RegisterRoutes(r chi.Router, h *Handler, hh *HealthHandler, lim *ratelimit.Limiter, cfg *config.Config) {
	r.Get("/health", hh.Health)
	r.Get("/healthz", hh.Healthz)

	r.Group(func(r chi.Router) {
		r.Use(wallet.SessionMiddleware(cfg.Session.CookieName, cfg.Session.Secure || cfg.IsProduction()))

		r.Get("/", h.LandingPage)
		r.Post(components.SearchPath, h.Search)
		r.Get(MenuPath, h.Menu)
		r.Get(MenuStreamPath, h.MenuStream)

		r.With(lim.Middleware(h.log)).Post(wallet.StatusPath, h.ReportStatus)
	})
}
