package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	RecoveryMiddleware(panicking).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/expenses", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != `{"error":"Server Error","success":false}` {
		t.Fatalf("body = %s", body)
	}
}

func TestCorsMiddleware(t *testing.T) {
	t.Run("any origin", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://example.com")
		CorsMiddleware(okHandler, []string{"*"}).ServeHTTP(rr, req)
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Fatalf("allow origin = %q", got)
		}
	})

	t.Run("listed origin", func(t *testing.T) {
		handler := CorsMiddleware(okHandler, []string{"http://localhost:3000"})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		handler.ServeHTTP(rr, req)
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Fatalf("allow origin = %q", got)
		}

		rr = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		handler.ServeHTTP(rr, req)
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Fatalf("unlisted origin allowed: %q", got)
		}
	})

	t.Run("preflight", func(t *testing.T) {
		rr := httptest.NewRecorder()
		CorsMiddleware(okHandler, []string{"*"}).ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/expenses", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204", rr.Code)
		}
	})
}

func TestRequestId(t *testing.T) {
	var seen string
	handler := RequestId(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIdFrom(r.Context())
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get(RequestIdHeader) != seen {
		t.Fatalf("generated id %q not propagated (header %q)", seen, rr.Header().Get(RequestIdHeader))
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIdHeader, "abc-123")
	handler.ServeHTTP(rr, req)
	if seen != "abc-123" {
		t.Fatalf("incoming id not kept, got %q", seen)
	}
}

func TestMetricsInstrument(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := metrics.Instrument("GET /api/expenses/{id}", RequestLogger(notFound))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/expenses/x", nil))
	}

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("GET /api/expenses/{id}", http.MethodGet, "404"))
	if got != 2 {
		t.Fatalf("request counter = %v, want 2", got)
	}
}
