package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eshipz/tracking-mcp/internal/infrastructure/config"
)

func invoke(t *testing.T, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestLiveness(t *testing.T) {
	rec := invoke(t, NewHealthHandler().Liveness)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestReadiness_OK(t *testing.T) {
	h := NewReadinessHandler(&config.Config{APIBaseURL: "https://app.eshipz.com", Token: "tok"})

	rec := invoke(t, h.Readiness)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body)
	}
}

func TestReadiness_DegradedWithoutToken(t *testing.T) {
	h := NewReadinessHandler(&config.Config{APIBaseURL: "https://app.eshipz.com"})

	rec := invoke(t, h.Readiness)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "degraded" {
		t.Errorf("status = %q, want degraded", body.Status)
	}
	if body.Dependencies["eshipz_token"].Status != "unhealthy" {
		t.Errorf("token dependency = %+v", body.Dependencies["eshipz_token"])
	}
}

func TestReadiness_DegradedWithBadBaseURL(t *testing.T) {
	for _, base := range []string{"", "not a url", "/relative/only"} {
		h := NewReadinessHandler(&config.Config{APIBaseURL: base, Token: "tok"})

		rec := invoke(t, h.Readiness)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("base %q: status = %d, want 503", base, rec.Code)
		}
	}
}
