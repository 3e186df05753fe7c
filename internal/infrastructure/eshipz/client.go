// Package eshipz is the HTTP adapter for the eshipz tracking API.
//
// The client performs exactly one outbound call per Fetch and collapses
// every failure mode into a single opaque error: the caller must not be
// able to distinguish a network error from a timeout, a non-2xx status, or
// an unparseable body. Hiding the failure cause is part of the contract.
package eshipz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eshipz/tracking-mcp/internal/api/metrics"
)

const (
	trackingsPath  = "/api/v2/trackings"
	requestTimeout = 30 * time.Second
	headerAPIToken = "X-API-TOKEN"
)

// Client calls the eshipz trackings endpoint. It implements
// ports.TrackingFetcher.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client with the default 30s request timeout.
func NewClient(baseURL, token string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

type trackingRequest struct {
	TrackID string `json:"track_id"`
}

// Fetch posts the tracking number to the provider and returns the raw JSON
// response body. No retries; one attempt per invocation.
func (c *Client) Fetch(ctx context.Context, trackingNumber string) (json.RawMessage, error) {
	payload, err := json.Marshal(trackingRequest{TrackID: trackingNumber})
	if err != nil {
		return nil, fmt.Errorf("eshipz: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+trackingsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("eshipz: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIToken, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.ResultTransportError).Inc()
		return nil, fmt.Errorf("eshipz: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.ResultBadStatus).Inc()
		c.log.Debug().Int("status", resp.StatusCode).Msg("eshipz returned non-2xx status")
		return nil, fmt.Errorf("eshipz: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.ResultTransportError).Inc()
		return nil, fmt.Errorf("eshipz: read response: %w", err)
	}

	if !json.Valid(raw) {
		metrics.UpstreamRequestsTotal.WithLabelValues(metrics.ResultBadBody).Inc()
		return nil, errors.New("eshipz: response body is not valid JSON")
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return raw, nil
}
