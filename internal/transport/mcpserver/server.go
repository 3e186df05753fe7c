// Package mcpserver exposes the tracking service as an MCP tool over stdio.
//
// The server speaks the Model Context Protocol to a tool-calling host
// process. Domain failures never surface as protocol errors: every call to
// get_tracking yields exactly one text content block, with failure states
// encoded in the text itself.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/eshipz/tracking-mcp/internal/api/metrics"
	"github.com/eshipz/tracking-mcp/internal/core/ports"
)

const (
	serverName    = "eshipz_tracking"
	serverVersion = "1.0.0"

	toolGetTracking = "get_tracking"
)

// Server wraps an MCP server with the get_tracking tool registered.
type Server struct {
	service  ports.TrackingService
	validate *requestValidator
	log      zerolog.Logger
	mcp      *mcp.Server
}

// getTrackingInput is the tool's argument schema. Only presence is
// validated; the tracking number's format is the provider's concern and the
// string is forwarded as-is.
type getTrackingInput struct {
	TrackingNumber string `json:"tracking_number" validate:"required" jsonschema:"the carrier tracking number of the shipment to look up"`
}

// New builds the MCP server and registers its tools.
func New(service ports.TrackingService, log zerolog.Logger) *Server {
	s := &Server{
		service:  service,
		validate: newRequestValidator(),
		log:      log,
	}

	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        toolGetTracking,
		Description: "Get tracking information for a shipment",
	}, s.handleGetTracking)
	s.mcp = srv

	return s
}

// Run serves the MCP protocol over stdio until the host closes the
// transport or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleGetTracking(ctx context.Context, _ *mcp.CallToolRequest, in getTrackingInput) (*mcp.CallToolResult, any, error) {
	metrics.ToolCallsTotal.WithLabelValues(toolGetTracking).Inc()

	if err := s.validate.Struct(in); err != nil {
		s.log.Debug().Err(err).Msg("get_tracking called with invalid arguments")
		return textResult(err.Error()), nil, nil
	}

	summary := s.service.TrackShipment(ctx, in.TrackingNumber)
	return textResult(summary), nil, nil
}

// textResult wraps a summary string as the single text content block the
// tool contract promises.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
