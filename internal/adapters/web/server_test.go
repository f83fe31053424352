package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gather/internal/config"
	"gather/internal/domain/entities"
)

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# HELP")
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, nil, nil, nil)

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), "ids are generated when absent")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = do(srv, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"), "caller ids are echoed back")
}

func TestEventImageServed(t *testing.T) {
	publicDir := t.TempDir()
	imageDir := filepath.Join(publicDir, "img", "events")
	require.NoError(t, os.MkdirAll(imageDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imageDir, "abc123.png"), []byte("png bytes"), 0o644))

	cfg := &config.Config{Addr: ":0", SessionSecret: testSecret, PublicDir: publicDir}
	srv := New(cfg, &stubEvents{}, &stubParticipants{}, &stubUsers{}, stubTranslator{})

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/img/events/abc123.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png bytes", rec.Body.String())

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/img/events/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPanicBecomes500(t *testing.T) {
	events := &stubEvents{
		list: func(context.Context, string) ([]entities.Event, error) {
			panic("boom")
		},
	}
	srv := newTestServer(t, events, nil, nil)

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInvalidSessionCookieIsGuest(t *testing.T) {
	events := &stubEvents{
		list: func(context.Context, string) ([]entities.Event, error) { return nil, nil },
	}
	srv := newTestServer(t, events, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	rec := do(srv, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/login", "request is served as a guest")
}
