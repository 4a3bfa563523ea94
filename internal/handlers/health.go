package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/emergentai/landing/internal/metrics"
	"github.com/emergentai/landing/internal/scheduler"
	"github.com/emergentai/landing/internal/version"
	"github.com/emergentai/landing/internal/wallet"
)

// Memory use at or above this percentage marks the process degraded.
const memoryDegradedPercent = 95.0

type HealthHandler struct {
	store     *wallet.Store
	scheduler *scheduler.Scheduler
	startAt   time.Time

	// Overridable for testing.
	getMemStats func(ctx context.Context) (*mem.VirtualMemoryStat, error)
}

func NewHealthHandler(store *wallet.Store, sched *scheduler.Scheduler) *HealthHandler {
	return &HealthHandler{
		store:       store,
		scheduler:   sched,
		startAt:     time.Now(),
		getMemStats: mem.VirtualMemoryWithContext,
	}
}

type HealthResponse struct {
	Status    string              `json:"status"`
	Timestamp string              `json:"timestamp"`
	Uptime    string              `json:"uptime"`
	Version   version.VersionInfo `json:"version"`
	Checks    map[string]Check    `json:"checks"`
}

type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports process health. The landing page has no external
// dependencies, so a failing check only degrades it; it still answers 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sessions := h.store.Len()
	metrics.WalletSessions.Set(float64(sessions))

	checks := map[string]Check{
		"wallet_sessions": {Status: "healthy", Message: formatCount(sessions, "session")},
		"memory":          h.checkMemory(r.Context()),
		"scheduler":       h.checkScheduler(),
	}

	status := "healthy"
	for _, c := range checks {
		if c.Status == "degraded" {
			status = "degraded"
		}
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Info(),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// Healthz is a plain liveness probe.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *HealthHandler) checkMemory(ctx context.Context) Check {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	vm, err := h.getMemStats(ctx)
	if err != nil {
		return Check{Status: "unknown", Message: err.Error()}
	}

	msg := fmt.Sprintf("%.1f%% used", vm.UsedPercent)
	if vm.UsedPercent >= memoryDegradedPercent {
		return Check{Status: "degraded", Message: msg}
	}
	return Check{Status: "healthy", Message: msg}
}

// A stopped scheduler means idle sessions are no longer swept.
func (h *HealthHandler) checkScheduler() Check {
	tasks := h.scheduler.ListTasks()
	sort.Strings(tasks)
	msg := "tasks: " + strings.Join(tasks, ", ")

	if !h.scheduler.IsRunning() {
		return Check{Status: "degraded", Message: "stopped; " + msg}
	}
	return Check{Status: "healthy", Message: msg}
}

func formatCount(n int, noun string) string {
	s := noun
	if n != 1 {
		s += "s"
	}
	return fmt.Sprintf("%d %s", n, s)
}
