package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	g "maragu.dev/gomponents"

	"github.com/emergentai/landing/internal/components"
	"github.com/emergentai/landing/internal/config"
	"github.com/emergentai/landing/internal/metrics"
	"github.com/emergentai/landing/internal/wallet"
	"github.com/emergentai/landing/pkg/apperror"
	"github.com/emergentai/landing/pkg/logger"
	"github.com/emergentai/landing/pkg/sse"
	"github.com/emergentai/landing/pkg/tracing"
)

// Handler serves the landing page and the navbar endpoints.
type Handler struct {
	provider  wallet.Provider
	watcher   wallet.Watcher
	reporter  wallet.Reporter
	page      components.PageConfig
	keepAlive time.Duration
	log       *slog.Logger
	search    *slog.Logger
}

func NewHandler(provider wallet.Provider, watcher wallet.Watcher, reporter wallet.Reporter, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		provider: provider,
		watcher:  watcher,
		reporter: reporter,
		page: components.PageConfig{
			Title:           cfg.Site.Title,
			Description:     cfg.Site.Description,
			WalletScriptURL: cfg.Wallet.ScriptURL,
		},
		keepAlive: cfg.Session.KeepAliveInterval,
		log:       log.With(logger.Scope("handlers")),
		search:    log.With(logger.Scope("navbar.search")),
	}
}

func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.Start(r.Context(), "landing.render")
	defer span.End()

	status := h.provider.Status(ctx)
	span.SetAttributes(attribute.String("wallet.status", status.String()))

	page := components.Home(h.page, components.Navbar(status, h.provider.ConnectButton()))
	h.writeHTML(w, r, page)
	metrics.PageRenders.Inc()
}

// Search is a placeholder for a real search. It never reads the submitted
// text, logs one diagnostic per submission and answers 204 so the browser
// stays on the page.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.search.Info("form submitted")
	metrics.SearchSubmissions.Inc()
	w.WriteHeader(http.StatusNoContent)
}

type statusRequest struct {
	Status string `json:"status"`
}

// ReportStatus records the connection status pushed by the browser library.
func (h *Handler) ReportStatus(w http.ResponseWriter, r *http.Request) {
	raw, err := readStatus(w, r)
	if err != nil {
		apperror.Write(w, r, h.log, err)
		return
	}

	status, err := wallet.ParseStatus(raw)
	if err != nil {
		apperror.Write(w, r, h.log, apperror.NewValidation("status", err.Error()))
		return
	}

	changed, err := h.reporter.Report(r.Context(), status)
	if err != nil {
		if errors.Is(err, wallet.ErrNoSession) {
			apperror.Write(w, r, h.log, apperror.NewBadRequest("missing session"))
			return
		}
		apperror.Write(w, r, h.log, apperror.NewInternal("failed to record status", err))
		return
	}

	metrics.StatusReports.WithLabelValues(status.String(), strconv.FormatBool(changed)).Inc()
	if changed {
		h.log.Debug("wallet status changed", slog.String("status", status.String()))
	}
	w.WriteHeader(http.StatusNoContent)
}

func readStatus(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		var req statusRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<10)).Decode(&req); err != nil {
			return "", apperror.NewBadRequest("invalid JSON body").WithInternal(err)
		}
		return req.Status, nil
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return r.FormValue("status"), nil
	default:
		return "", apperror.ErrUnsupportedMedia
	}
}

// Menu renders the menu fragment for the session's current status.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	h.writeHTML(w, r, components.NavMenu(h.provider.Status(r.Context())))
}

// MenuStream pushes a freshly rendered menu whenever the session's status
// changes. Only the menu list is sent; the rest of the navbar stays mounted.
func (h *Handler) MenuStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	updates, ok := h.watcher.Watch(ctx)
	if !ok {
		apperror.Write(w, r, h.log, apperror.NewBadRequest("missing session"))
		return
	}

	sw := sse.NewWriter(w)
	if err := sw.Start(); err != nil {
		apperror.Write(w, r, h.log, apperror.ErrStreamingFailed.WithInternal(err))
		return
	}
	defer sw.Close()

	metrics.MenuStreams.Inc()
	defer metrics.MenuStreams.Dec()

	if err := h.pushMenu(sw, h.provider.Status(ctx)); err != nil {
		h.log.Debug("menu stream closed", logger.Error(err))
		return
	}

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-updates:
			if !ok {
				return
			}
			if err := h.pushMenu(sw, status); err != nil {
				h.log.Debug("menu stream closed", logger.Error(err))
				return
			}
		case <-ticker.C:
			if err := sw.WriteComment("keep-alive"); err != nil {
				return
			}
		}
	}
}

func (h *Handler) pushMenu(sw *sse.Writer, status wallet.ConnectionStatus) error {
	var b strings.Builder
	if err := components.NavMenu(status).Render(&b); err != nil {
		_ = sw.WriteEvent(string(sse.EventError), sse.NewErrorEvent("render failed"))
		return err
	}
	metrics.MenuPushes.Inc()
	return sw.WriteEvent(string(sse.EventMenu), sse.NewMenuEvent(status.String(), b.String()))
}

// writeHTML renders n fully before writing so a render error can still
// produce an error response.
func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, n g.Node) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		apperror.Write(w, r, h.log, apperror.NewInternal("failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
