package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/emergentai/landing/internal/metrics"
	"github.com/emergentai/landing/internal/ratelimit"
	"github.com/emergentai/landing/internal/wallet"
	"github.com/emergentai/landing/pkg/logger"
)

// SessionSweepTask forgets wallet sessions, and their rate limit buckets,
// once nobody has touched them for a while.
type SessionSweepTask struct {
	store   *wallet.Store
	limiter *ratelimit.Limiter
	idle    time.Duration
	log     *slog.Logger
}

func NewSessionSweepTask(store *wallet.Store, limiter *ratelimit.Limiter, idle time.Duration, log *slog.Logger) *SessionSweepTask {
	return &SessionSweepTask{
		store:   store,
		limiter: limiter,
		idle:    idle,
		log:     log.With(logger.Scope("scheduler.session_sweep")),
	}
}

func (t *SessionSweepTask) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	removed := t.store.Sweep(t.idle)
	remaining := t.store.Len()
	buckets := t.limiter.Sweep(t.idle)

	metrics.SessionsSwept.Add(float64(removed))
	metrics.WalletSessions.Set(float64(remaining))

	if removed > 0 || buckets > 0 {
		t.log.Debug("swept idle wallet sessions",
			slog.Int("removed", removed),
			slog.Int("remaining", remaining),
			slog.Int("rate_buckets_removed", buckets))
	}
	return nil
}
