package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/eshipz/tracking-mcp/internal/api/handler"
	"github.com/eshipz/tracking-mcp/internal/infrastructure/config"
)

// NewRouter builds the ops listener: health probes and Prometheus metrics.
// It runs beside the MCP stdio loop and is only started when OPS_ADDR is
// configured. Echo's access-log middleware is not installed: it writes to
// stdout, which carries the MCP transport.
func NewRouter(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("eshipz_ops"))

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(cfg)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness)   // readiness – is the upstream config usable?
	e.GET("/metrics", echoprometheus.NewHandler())   // default prometheus registry

	return e
}
