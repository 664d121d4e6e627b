package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tea", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	resp := httptest.NewRecorder()

	access.ServeHTTP(resp, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entry.Message)
	}

	fields := map[string]zap.Field{}
	for _, f := range entry.Context {
		fields[f.Key] = f
	}

	if f, ok := fields["status"]; !ok || f.Integer != http.StatusTeapot {
		t.Fatalf("expected status 418, got %+v", f)
	}
	if f, ok := fields["path"]; !ok || f.String != "/tea" {
		t.Fatalf("expected path '/tea', got %+v", f)
	}
	if f, ok := fields["method"]; !ok || f.String != http.MethodGet {
		t.Fatalf("expected method GET, got %+v", f)
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatalf("expected duration field, got %+v", fields)
	}
}

func TestRequestLoggerStoresTaggedLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LogInfo(r.Context(), "inside handler")
		w.WriteHeader(http.StatusOK)
	})
	// Simulate the request ID middleware with chi's key so GetReqID finds it.
	handler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, "test-request-id")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}(RequestLogger(base, "")(inner))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["requestId"]; got != "test-request-id" {
		t.Fatalf("expected requestId test-request-id, got %v", got)
	}
}

func TestRequestLoggerWithTraceHeader(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	handler := RequestLogger(zap.New(core), "test-project")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LogInfo(r.Context(), "traced")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("traceparent", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	want := "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb"
	if got := entries[0].ContextMap()["logging.googleapis.com/trace"]; got != want {
		t.Fatalf("expected trace %s, got %v", want, got)
	}
}

func TestRequestLoggerNilBase(t *testing.T) {
	handler := RequestLogger(nil, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if LoggerFromContext(r.Context()) == nil {
			t.Fatal("expected non-nil logger in context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
