// Command eshipz-mcp serves the get_tracking tool over MCP stdio.
//
// A tool-calling host spawns this binary and speaks the Model Context
// Protocol on stdin/stdout. Logs go to stderr; an optional ops listener
// (OPS_ADDR) exposes health probes and Prometheus metrics.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eshipz/tracking-mcp/internal/api"
	"github.com/eshipz/tracking-mcp/internal/core/service"
	"github.com/eshipz/tracking-mcp/internal/infrastructure/config"
	"github.com/eshipz/tracking-mcp/internal/infrastructure/eshipz"
	"github.com/eshipz/tracking-mcp/internal/transport/mcpserver"
	"github.com/eshipz/tracking-mcp/pkg/logger"
)

const opsShutdownTimeout = 3 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Token == "" {
		log.Warn().Msg("ESHIPZ_TOKEN is not set; upstream requests will likely be rejected")
	}

	fetcher := eshipz.NewClient(cfg.APIBaseURL, cfg.Token, log)
	trackingService := service.NewTrackingService(fetcher, log)
	srv := mcpserver.New(trackingService, log)

	if cfg.OpsAddr != "" {
		e := api.NewRouter(cfg)
		go startOps(e, cfg.OpsAddr, log)
		defer shutdownOps(e, log)
	}

	log.Info().Str("base_url", cfg.APIBaseURL).Msg("eshipz tracking MCP server listening on stdio")
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("mcp server exited")
		os.Exit(1)
	}
	log.Info().Msg("eshipz tracking MCP server stopped")
}

func startOps(e *echo.Echo, addr string, log zerolog.Logger) {
	log.Info().Str("addr", addr).Msg("ops listener starting")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("ops listener stopped")
	}
}

func shutdownOps(e *echo.Echo, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), opsShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("ops listener shutdown failed")
	}
}
