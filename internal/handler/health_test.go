package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/wrestling-analytics/internal/handler"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func newEngine(p handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// nil service: only health routes are exercised here
	handler.Register(r, p, nil, zerolog.New(io.Discard))
	return r
}

func TestHealthRoutes(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		ping   error
		want   int
	}{
		{"ready", http.MethodGet, "/api/v1/health/ready", nil, http.StatusOK},
		{"not loaded yet", http.MethodGet, "/api/v1/health/ready", repository.ErrNotReady, http.StatusServiceUnavailable},
		{"live root", http.MethodGet, "/live", errors.New("ignored"), http.StatusOK},
		{"live versioned", http.MethodGet, "/api/v1/health/live", nil, http.StatusOK},
		{"ready root", http.MethodGet, "/ready", nil, http.StatusOK},
		{"ready root unavailable", http.MethodGet, "/ready", repository.ErrNotReady, http.StatusServiceUnavailable},
		{"unknown path", http.MethodGet, "/no-such", nil, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(stubPinger{err: tc.ping})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected status %d, got %d, body=%s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestReadiness_MethodNotAllowed(t *testing.T) {
	r := newEngine(stubPinger{})
	w := httptest.NewRecorder()
	// Gin returns 404 for an unregistered method unless HandleMethodNotAllowed is set.
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/health/ready", nil))
	if w.Code != http.StatusNotFound && w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 404 or 405, got %d", w.Code)
	}
}

func TestDocs(t *testing.T) {
	r := newEngine(stubPinger{})
	for _, path := range []string{"/docs", "/openapi.yaml"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("%s: expected non-empty 200, got %d", path, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(stubPinger{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	if w.Header().Get(handler.RequestIDHeader) == "" {
		t.Fatalf("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(handler.RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming id to be echoed, got %q", got)
	}
}
