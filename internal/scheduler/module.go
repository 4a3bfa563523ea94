package scheduler

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/emergentai/landing/internal/config"
	"github.com/emergentai/landing/internal/ratelimit"
	"github.com/emergentai/landing/internal/wallet"
)

var Module = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(
		RegisterTasks,
		RegisterSchedulerLifecycle,
	),
)

type TaskParams struct {
	fx.In
	Scheduler *Scheduler
	Store     *wallet.Store
	Limiter   *ratelimit.Limiter
	Log       *slog.Logger
	Cfg       *config.Config
}

// RegisterTasks registers all scheduled tasks
func RegisterTasks(p TaskParams) error {
	sweep := NewSessionSweepTask(p.Store, p.Limiter, p.Cfg.Session.IdleTimeout, p.Log)
	return p.Scheduler.AddIntervalTask("session_sweep", p.Cfg.Session.SweepInterval, sweep.Run)
}

func RegisterSchedulerLifecycle(lc fx.Lifecycle, s *Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
