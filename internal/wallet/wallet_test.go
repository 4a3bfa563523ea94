package wallet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    ConnectionStatus
		wantErr bool
	}{
		{"connected", StatusConnected, false},
		{"disconnected", StatusDisconnected, false},
		{"connecting", StatusConnecting, false},
		{"unknown", StatusUnknown, false},
		{" Connected ", StatusConnected, false},
		{"", "", true},
		{"linked", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConnectionStatus_Connected(t *testing.T) {
	assert.True(t, StatusConnected.Connected())
	for _, s := range []ConnectionStatus{StatusUnknown, StatusDisconnected, StatusConnecting, "", "weird"} {
		assert.False(t, s.Connected(), "status %q", s)
	}
	assert.Equal(t, "unknown", ConnectionStatus("").String())
}

func TestStore_GetSet(t *testing.T) {
	s := NewStore()

	assert.Equal(t, StatusUnknown, s.Get("missing"))

	assert.True(t, s.Set("a", StatusConnecting))
	assert.False(t, s.Set("a", StatusConnecting), "same status is not a change")
	assert.True(t, s.Set("a", StatusConnected))
	assert.Equal(t, StatusConnected, s.Get("a"))

	assert.False(t, s.Set("b", StatusUnknown), "unknown is the initial status")
	assert.Equal(t, StatusUnknown, s.Get("b"))
	assert.Equal(t, 2, s.Len())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Subscribe(ctx, "a")

	s.Set("a", StatusConnecting)
	assert.Equal(t, StatusConnecting, receive(t, ch))

	s.Set("a", StatusConnected)
	assert.Equal(t, StatusConnected, receive(t, ch))

	s.Set("other", StatusConnected)
	select {
	case st := <-ch:
		t.Fatalf("unexpected status %q for another session", st)
	default:
	}

	cancel()
	require.Eventually(t, func() bool {
		_, open := <-ch
		return !open
	}, time.Second, 10*time.Millisecond)
}

func TestStore_SubscribeKeepsLatest(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := s.Subscribe(ctx, "a")

	s.Set("a", StatusConnecting)
	s.Set("a", StatusConnected)
	s.Set("a", StatusDisconnected)

	assert.Equal(t, StatusDisconnected, receive(t, ch))
	select {
	case st := <-ch:
		t.Fatalf("stale status %q still buffered", st)
	default:
	}
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore()
	s.now = func() time.Time { return now }

	s.Set("idle", StatusConnected)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Subscribe(ctx, "watched")

	now = now.Add(time.Hour)
	s.Set("fresh", StatusDisconnected)

	removed := s.Sweep(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, StatusUnknown, s.Get("idle"))
	assert.Equal(t, StatusDisconnected, s.Get("fresh"))
}

func TestSessionMiddleware(t *testing.T) {
	var seen string
	h := SessionMiddleware("sid", false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		seen = id
	}))

	t.Run("issues cookie when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.Equal(t, cookies[0].Value, seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})

	t.Run("reuses valid cookie", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: id})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Result().Cookies())
		assert.Equal(t, id, seen)
	})

	t.Run("replaces malformed cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "not-a-uuid"})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		require.Len(t, rec.Result().Cookies(), 1)
		assert.NotEqual(t, "not-a-uuid", seen)
	})
}

func TestSessionProvider(t *testing.T) {
	store := NewStore()
	p := NewSessionProvider(store, &ConnectButton{Theme: "dark", StatusEndpoint: StatusPath})

	assert.Equal(t, StatusUnknown, p.Status(context.Background()))
	_, ok := p.Watch(context.Background())
	assert.False(t, ok)
	_, err := p.Report(context.Background(), StatusConnected)
	assert.ErrorIs(t, err, ErrNoSession)

	ctx, cancel := context.WithCancel(WithSession(context.Background(), "s1"))
	defer cancel()

	ch, ok := p.Watch(ctx)
	require.True(t, ok)

	changed, err := p.Report(ctx, StatusConnected)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StatusConnected, p.Status(ctx))
	assert.Equal(t, StatusConnected, receive(t, ch))
}

func TestConnectButton_Node(t *testing.T) {
	var b strings.Builder
	btn := &ConnectButton{ClientID: "abc", Theme: "light", StatusEndpoint: StatusPath, StatusEvent: "acme:wallet"}
	require.NoError(t, btn.Node().Render(&b))

	html := b.String()
	assert.Contains(t, html, `id="connect-wallet"`)
	assert.Contains(t, html, `data-client-id="abc"`)
	assert.Contains(t, html, `data-theme="light"`)
	assert.Contains(t, html, `data-status-endpoint="/wallet/status"`)
	assert.Contains(t, html, `data-status-event="acme:wallet"`)
	assert.Contains(t, html, "Connect Wallet")

	b.Reset()
	require.NoError(t, (&ConnectButton{}).Node().Render(&b))
	assert.NotContains(t, b.String(), "data-client-id")
	assert.Contains(t, b.String(), `data-status-event="wallet:status"`)
}

func receive(t *testing.T, ch <-chan ConnectionStatus) ConnectionStatus {
	t.Helper()
	select {
	case st := <-ch:
		return st
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for status")
		return ""
	}
}
