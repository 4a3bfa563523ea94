// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PageRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_page_renders_total",
		Help: "Total number of landing page renders",
	})

	SearchSubmissions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navbar_search_submissions_total",
		Help: "Total number of search form submissions received",
	})

	StatusReports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_status_reports_total",
		Help: "Wallet status reports from browsers, by status and whether it changed",
	}, []string{"status", "changed"})

	MenuStreams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "navbar_menu_streams_active",
		Help: "Open navbar menu event streams",
	})

	MenuPushes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navbar_menu_pushes_total",
		Help: "Menu fragments pushed over event streams",
	})

	WalletSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wallet_sessions",
		Help: "Wallet sessions currently tracked in memory",
	})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_throttled_total",
		Help: "Requests rejected by the per-session rate limiter, by path",
	}, []string{"path"})

	SessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_sessions_swept_total",
		Help: "Idle wallet sessions removed by the sweeper",
	})
)
