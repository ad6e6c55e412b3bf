package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func requestsTotal(t *testing.T, reg *prometheus.Registry, endpoint, method, status string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "naebak_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["endpoint"] == endpoint && labels["method"] == method && labels["status_code"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	logging.UseNop()
	promReg := prometheus.NewRegistry()
	metricsReg := metrics.NewMetricsRegistry(promReg)

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(metricsReg))
	r.Route("/api", func(a chi.Router) {
		a.Get("/faq/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/faq/42", nil))

	if rr.Code != http.StatusTeapot {
		t.Fatalf("Expected status 418, got %d", rr.Code)
	}
	if got := requestsTotal(t, promReg, "/api/faq/{id}", "GET", "418"); got != 1 {
		t.Errorf("expected one request recorded under the route pattern, got %v", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || rr.Header().Get("X-Request-ID") != seen {
		t.Errorf("expected generated id in context and header, got %q / %q", seen, rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "abc-123" {
		t.Errorf("expected incoming id to be kept, got %q", seen)
	}
}

func TestRateLimiter_OnlyWrites(t *testing.T) {
	promReg := prometheus.NewRegistry()
	limiter := NewRateLimiter(0.001, 1, metrics.NewMetricsRegistry(promReg))
	h := limiter.Middleware(http.HandlerFunc(okHandler))

	send := func(method string) int {
		req := httptest.NewRequest(method, "/api/faq", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send(http.MethodPost); code != http.StatusOK {
		t.Fatalf("Expected first write to pass, got %d", code)
	}
	if code := send(http.MethodPost); code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", code)
	}
	for i := 0; i < 5; i++ {
		if code := send(http.MethodGet); code != http.StatusOK {
			t.Fatalf("Expected reads to pass, got %d", code)
		}
	}

	other := httptest.NewRequest(http.MethodDelete, "/api/faq/1", nil)
	other.RemoteAddr = "10.0.0.2:5555"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected separate bucket per IP, got %d", rr.Code)
	}
}

func TestRecoverer(t *testing.T) {
	logging.UseNop()
	h := Recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d", rr.Code)
	}
	var body dtos.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error == "" {
		t.Error("expected an error message")
	}
}
