// Package ratelimit throttles wallet status reports per session.
package ratelimit

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"github.com/emergentai/landing/internal/config"
	"github.com/emergentai/landing/internal/metrics"
	"github.com/emergentai/landing/internal/wallet"
	"github.com/emergentai/landing/pkg/apperror"
	"github.com/emergentai/landing/pkg/logger"
)

var Module = fx.Module("ratelimit",
	fx.Provide(NewFromConfig),
)

type entry struct {
	limiter *rate.Limiter
	seen    time.Time
}

// Limiter keeps one token bucket per key. A zero Limiter, or one built
// with a non-positive rate, allows everything.
type Limiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*entry
	now     func() time.Time
}

// New returns a Limiter allowing perMinute events per key with the given burst.
func New(perMinute, burst int) *Limiter {
	l := &Limiter{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = max(burst, 1)
	}
	return l
}

func NewFromConfig(cfg *config.Config) *Limiter {
	return New(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
}

// Enabled reports whether the limiter rejects anything at all.
func (l *Limiter) Enabled() bool {
	return l != nil && l.limit > 0
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) bool {
	if !l.Enabled() {
		return true
	}

	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.seen = l.now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

// Sweep drops buckets for keys not seen within idle and returns how many
// were removed.
func (l *Limiter) Sweep(idle time.Duration) int {
	if l == nil {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for key, e := range l.entries {
		if e.seen.Before(cutoff) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Middleware rejects requests over the limit with 429. Requests are keyed
// by wallet session, falling back to the remote address.
func (l *Limiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("ratelimit"))

	return func(next http.Handler) http.Handler {
		if !l.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, ok := wallet.SessionFromContext(r.Context())
			if !ok {
				key = r.RemoteAddr
			}

			if !l.Allow(key) {
				metrics.RateLimited.WithLabelValues(r.URL.Path).Inc()
				log.Debug("request throttled", slog.String("path", r.URL.Path))
				w.Header().Set("Retry-After", "60")
				apperror.Write(w, r, log, apperror.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
