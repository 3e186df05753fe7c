package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eshipz/tracking-mcp/internal/api/metrics"
	"github.com/eshipz/tracking-mcp/internal/core/domain"
	"github.com/eshipz/tracking-mcp/internal/core/ports"
)

// Fixed messages returned for the two non-shipment outcomes. The exact
// wording is part of the tool contract.
const (
	msgUnretrievable = "Tracking information could not be retrieved. Please verify the tracking number."
	msgNoShipments   = "No shipment data found in the response."
)

// TrackingService fetches raw tracking data and renders it as a
// human-readable summary. It is the core of the system; the fetcher is an
// injected collaborator.
type TrackingService struct {
	fetcher ports.TrackingFetcher
	log     zerolog.Logger
}

func NewTrackingService(fetcher ports.TrackingFetcher, log zerolog.Logger) *TrackingService {
	return &TrackingService{fetcher: fetcher, log: log}
}

// TrackShipment returns a status summary for trackingNumber. It is total:
// every failure mode maps to a fixed human-readable string and nothing
// escapes as an error. Only the first record of a multi-record response is
// consumed (scope decision, not a bug).
func (s *TrackingService) TrackShipment(ctx context.Context, trackingNumber string) string {
	start := time.Now()
	outcome := metrics.OutcomeSummarized

	defer func() {
		metrics.LookupsTotal.WithLabelValues(outcome).Inc()
		metrics.LookupDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	raw, err := s.fetcher.Fetch(ctx, trackingNumber)
	if err != nil {
		outcome = metrics.OutcomeFetchFailed
		s.log.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking fetch failed")
		return msgUnretrievable
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil || len(records) == 0 {
		outcome = metrics.OutcomeNoData
		s.log.Debug().Str("tracking_number", trackingNumber).Msg("response carried no shipment records")
		return msgNoShipments
	}

	var shipment domain.Shipment
	if err := json.Unmarshal(records[0], &shipment); err != nil {
		outcome = metrics.OutcomeDecodeError
		s.log.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("shipment record decode failed")
		return fmt.Sprintf("Error processing tracking data: %s", err)
	}

	shipment.NormalizeCheckpointOrder()

	summary := recoverSummary(func() string {
		return summarize(&shipment)
	})

	s.log.Info().
		Str("tracking_number", trackingNumber).
		Str("tag", string(shipment.Tag)).
		Str("carrier", shipment.Slug).
		Int("events", len(shipment.Checkpoints)).
		Msg("shipment summarized")

	return summary
}

// recoverSummary runs fn and converts any panic into the error-processing
// message, keeping TrackShipment total even for inputs the formatter was
// not written for.
func recoverSummary(fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("Error processing tracking data: %v", r)
		}
	}()
	return fn()
}

// summarize builds the status summary plus the trailing last-updated and
// event-count lines.
func summarize(s *domain.Shipment) string {
	var b strings.Builder
	b.WriteString(statusLine(s))

	if latest, ok := s.LatestCheckpoint(); ok {
		if latest.Date != "" {
			b.WriteString("\n   Last updated: " + latest.Date)
		}
		fmt.Fprintf(&b, "\n   Total events: %d", len(s.Checkpoints))
	}
	return b.String()
}

// statusLine is the per-tag dispatch. Each branch is a best-effort
// concatenation: absent fields are omitted, never rendered empty.
func statusLine(s *domain.Shipment) string {
	carrier := formatCarrier(s.Slug)
	latest, _ := s.LatestCheckpoint()

	var b strings.Builder
	switch s.Tag {
	case domain.TagDelivered:
		b.WriteString("Delivered via " + carrier)
		if s.DeliveryDate != "" {
			b.WriteString(" on " + s.DeliveryDate)
		}
		if latest.City != "" {
			b.WriteString(" at " + latest.City)
		}

	case domain.TagOutForDelivery:
		b.WriteString("Out for delivery via " + carrier)
		if latest.City != "" {
			b.WriteString(" from " + latest.City)
		}

	case domain.TagInTransit:
		b.WriteString("In transit via " + carrier)
		if latest.City != "" {
			b.WriteString(", currently in " + latest.City)
		}
		if latest.Remark != "" {
			b.WriteString(" - " + latest.Remark)
		}
		if s.ExpectedDeliveryDate != "" {
			b.WriteString("\n   Expected delivery: " + s.ExpectedDeliveryDate)
		}

	case domain.TagException:
		b.WriteString("Exception via " + carrier)
		if latest.City != "" {
			b.WriteString(" at " + latest.City)
		}
		if latest.Remark != "" {
			b.WriteString(" - " + latest.Remark)
		}

	case domain.TagPickedUp:
		b.WriteString("Picked up via " + carrier)
		if latest.City != "" {
			b.WriteString(" from " + latest.City)
		}

	case domain.TagInfoReceived:
		b.WriteString("Shipment information received by " + carrier)

	default:
		if s.Tag != "" {
			b.WriteString(string(s.Tag) + " via " + carrier)
		} else {
			number := s.TrackingNumber
			if number == "" {
				number = "Unknown"
			}
			b.WriteString("Tracking " + number + " via " + carrier)
		}
		switch {
		case latest.Remark != "" && latest.City != "":
			b.WriteString(" - " + latest.Remark + " (" + latest.City + ")")
		case latest.Remark != "":
			b.WriteString(" - " + latest.Remark)
		}
	}
	return b.String()
}

// formatCarrier renders the carrier slug for display.
func formatCarrier(slug string) string {
	if slug == "" {
		return "Unknown Carrier"
	}
	return strings.ToUpper(slug)
}
