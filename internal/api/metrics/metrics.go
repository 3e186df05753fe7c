// Package metrics defines and registers all custom Prometheus metrics for
// the eshipz tracking MCP server. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// at package load; the ops listener exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "eshipz"

// ── Lookup metrics ────────────────────────────────────────────────────────────

// Outcome labels for LookupsTotal and LookupDuration.
const (
	OutcomeSummarized  = "summarized"   // summary built from a shipment record
	OutcomeFetchFailed = "fetch_failed" // provider call collapsed to Absent
	OutcomeNoData      = "no_data"      // response present but no shipment records
	OutcomeDecodeError = "decode_error" // record 0 had unexpected field shapes
)

// LookupsTotal counts completed tracking lookups.
// Label:
//   - outcome: "summarized", "fetch_failed", "no_data", or "decode_error"
var LookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookups_total",
		Help:      "Total number of tracking lookups, by outcome.",
	},
	[]string{"outcome"},
)

// LookupDuration measures a lookup end-to-end (fetch + summarize).
// Label:
//   - outcome: same values as LookupsTotal
var LookupDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "lookup_duration_seconds",
		Help:      "Duration of a tracking lookup from fetch to summary.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"outcome"},
)

// ── Upstream metrics ──────────────────────────────────────────────────────────

// Result labels for UpstreamRequestsTotal.
const (
	ResultOK             = "ok"
	ResultTransportError = "transport_error"
	ResultBadStatus      = "bad_status"
	ResultBadBody        = "bad_body"
)

// UpstreamRequestsTotal counts calls to the eshipz trackings endpoint.
// Label:
//   - result: "ok", "transport_error", "bad_status", or "bad_body"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of requests to the tracking provider, by result.",
	},
	[]string{"result"},
)

// ── Tool metrics ──────────────────────────────────────────────────────────────

// ToolCallsTotal counts MCP tool invocations.
// Label:
//   - tool: the tool name (currently only "get_tracking")
var ToolCallsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tool_calls_total",
		Help:      "Total number of MCP tool invocations, by tool name.",
	},
	[]string{"tool"},
)
