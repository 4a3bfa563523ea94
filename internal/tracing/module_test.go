package tracing

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/emergentai/landing/internal/config"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	res, err := NewTracerProvider(&config.Config{}, slog.Default())
	require.NoError(t, err)

	assert.Nil(t, res.SDKProvider)
	assert.NotNil(t, otel.GetTracerProvider())
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(1).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), Sampler(2).Description())
	assert.Equal(t, sdktrace.TraceIDRatioBased(0.25).Description(), Sampler(0.25).Description())
}

func TestMiddleware_DisabledPassesThrough(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	wrapped := Middleware(&config.Config{}, h)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestMiddleware_Enabled(t *testing.T) {
	cfg := &config.Config{Otel: config.OtelConfig{ExporterEndpoint: "http://localhost:4318", ServiceName: "landing"}}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	wrapped := Middleware(cfg, h)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
