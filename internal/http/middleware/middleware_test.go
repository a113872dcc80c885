package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/msom-squad-service/internal/logging"
	"github.com/preston-bernstein/msom-squad-service/internal/metrics"
	"github.com/preston-bernstein/msom-squad-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogs(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected inbound request id in context, got %q", got)
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/wins", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	out := buf.String()
	if !strings.Contains(out, "request complete") || !strings.Contains(out, "status_code=418") || !strings.Contains(out, "request_id=abc-123") {
		t.Fatalf("unexpected log output %s", out)
	}
	if rec.ProviderCalls("http") != 0 {
		t.Fatalf("expected provider metrics untouched")
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/?foo=bar", nil)
	req.Header.Set("X-Request-ID", "not valid!")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "not valid!" {
		t.Fatalf("expected generated X-Request-ID header, got %q", got)
	}
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, metrics.NewRecorder(), next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "client_ip=198.51.100.1") {
		t.Fatalf("expected forwarded client ip in logs, got %s", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/", want: "/"},
		{in: "/api/wins", want: "/api/wins"},
		{in: "/api/games", want: "/api/games"},
		{in: "/health", want: "/health"},
		{in: "/logos/Michigan_State.svg", want: "/logos/:file"},
		{in: "/wp-admin", want: "other"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}

	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/wins", nil)
		handler.ServeHTTP(rr, req)
	}
}
