package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ngmaloney/alert-banner/internal/stories"
)

func newTestServer() *Server {
	return NewServer(stories.All(), zap.NewNop())
}

func do(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_Index(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	for _, s := range stories.All() {
		assert.Contains(t, rec.Body.String(), `href="/stories/`+s.ID+`"`)
	}
}

func TestServer_Health(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_Story(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantStatus int
		contains   []string
	}{
		{
			name:       "matrix",
			target:     "/stories/complete-variant-matrix",
			wantStatus: http.StatusOK,
			contains:   []string{"Complete Alert Variant Matrix", "Filled Variant", "Nothing description"},
		},
		{
			name:       "forced narrow viewport",
			target:     "/stories/default?viewport=400",
			wantStatus: http.StatusOK,
			contains:   []string{"ab-narrow"},
		},
		{
			name:       "message shown",
			target:     "/stories/default?message=Hello",
			wantStatus: http.StatusOK,
			contains:   []string{`role="status"`, "Hello"},
		},
		{name: "unknown story", target: "/stories/nope", wantStatus: http.StatusNotFound},
		{name: "bad viewport", target: "/stories/default?viewport=wide", wantStatus: http.StatusBadRequest},
		{name: "bad dismissed", target: "/stories/default?dismissed=x", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodGet, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestServer_StoryDismissed(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/stories/with-close-button?dismissed=0,1,2")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `role="alert"`)
	assert.Contains(t, rec.Body.String(), "All banners dismissed")
}

func TestServer_StoryHooks(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/stories/with-both-close-and-action?dismissed=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/stories/with-both-close-and-action/banners/0/close?dismissed=1"`)
	assert.NotContains(t, rec.Body.String(), "/banners/1/")
}

func TestServer_Playground(t *testing.T) {
	s := newTestServer()

	rec := do(t, s, http.MethodGet, "/playground?severity=success&variant=filled&title=Done")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-severity="success"`)
	assert.Contains(t, rec.Body.String(), `data-variant="filled"`)
	assert.Contains(t, rec.Body.String(), ">Done<")

	for _, target := range []string{
		"/playground?severity=fatal",
		"/playground?variant=ghost",
		"/playground?showTitle=maybe",
	} {
		rec := do(t, s, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestServer_Activate(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantStatus  int
		wantMessage string
		wantDismiss string
	}{
		{
			name:        "action",
			target:      "/stories/with-action-button/banners/0/action",
			wantStatus:  http.StatusSeeOther,
			wantMessage: "Undo action clicked!",
		},
		{
			name:        "close dismisses",
			target:      "/stories/with-close-button/banners/1/close?dismissed=0",
			wantStatus:  http.StatusSeeOther,
			wantMessage: "Error alert closed!",
			wantDismiss: "0,1",
		},
		{name: "missing control", target: "/stories/with-action-button/banners/0/close", wantStatus: http.StatusConflict},
		{name: "no controls", target: "/stories/title-only/banners/0/action", wantStatus: http.StatusConflict},
		{name: "already dismissed", target: "/stories/with-close-button/banners/0/close?dismissed=0", wantStatus: http.StatusConflict},
		{name: "unknown story", target: "/stories/nope/banners/0/close", wantStatus: http.StatusNotFound},
		{name: "unknown banner", target: "/stories/with-close-button/banners/9/close", wantStatus: http.StatusNotFound},
		{name: "unknown control", target: "/stories/with-close-button/banners/0/explode", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(), http.MethodPost, tt.target)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusSeeOther {
				return
			}

			loc, err := url.Parse(rec.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantMessage, loc.Query().Get("message"))
			assert.Equal(t, tt.wantDismiss, loc.Query().Get("dismissed"))
		})
	}
}

func TestServer_ActivateRequiresPost(t *testing.T) {
	rec := do(t, newTestServer(), http.MethodGet, "/stories/with-close-button/banners/0/close")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_ListenAndServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestServer().ListenAndServe(ctx, ServeOptions{Addr: "127.0.0.1:0"})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
