package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eshipz/tracking-mcp/internal/infrastructure/config"
)

// NewRouter registers prometheus collectors in the default registry, so it
// must be built exactly once per test binary. Readiness permutations are
// covered in the handler package.
var testRouter = NewRouter(&config.Config{
	APIBaseURL: "https://app.eshipz.com",
	Token:      "tok-123",
})

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Liveness(t *testing.T) {
	rec := get(t, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body)
	}
}

func TestRouter_ReadinessOK(t *testing.T) {
	rec := get(t, "/health/ready")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}
}

func TestRouter_MetricsExposed(t *testing.T) {
	// Drive one request through the middleware so the ops series exist.
	get(t, "/health")

	rec := get(t, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	// Default registry always carries the Go runtime collector.
	if !strings.Contains(body, "go_goroutines") {
		t.Error("metrics output missing default registry collectors")
	}
	if !strings.Contains(body, "eshipz_ops") {
		t.Error("metrics output missing ops middleware series")
	}
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	rec := get(t, "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
