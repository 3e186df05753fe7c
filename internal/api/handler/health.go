package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/eshipz/tracking-mcp/internal/infrastructure/config"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// The server has no stateful dependencies; readiness means the upstream
// configuration is usable (token present, base URL well-formed).
type ReadinessHandler struct {
	cfg *config.Config
}

func NewReadinessHandler(cfg *config.Config) *ReadinessHandler {
	return &ReadinessHandler{cfg: cfg}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- API token configured ---
	if h.cfg.Token == "" {
		deps["eshipz_token"] = dependencyStatus{Status: "unhealthy", Error: "ESHIPZ_TOKEN is not set"}
		healthy = false
	} else {
		deps["eshipz_token"] = dependencyStatus{Status: "ok"}
	}

	// --- Base URL well-formed ---
	if u, err := url.Parse(h.cfg.APIBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		deps["eshipz_base_url"] = dependencyStatus{Status: "unhealthy", Error: "API_BASE_URL is not a valid absolute URL"}
		healthy = false
	} else {
		deps["eshipz_base_url"] = dependencyStatus{Status: "ok"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
