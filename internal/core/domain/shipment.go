package domain

import (
	"sort"
	"time"
)

// StatusTag is the categorical shipment status reported by the eshipz
// provider. Values outside the known set flow through untyped and are
// rendered verbatim by the summarizer.
type StatusTag string

const (
	TagDelivered      StatusTag = "Delivered"
	TagOutForDelivery StatusTag = "OutForDelivery"
	TagInTransit      StatusTag = "InTransit"
	TagException      StatusTag = "Exception"
	TagPickedUp       StatusTag = "PickedUp"
	TagInfoReceived   StatusTag = "InfoReceived"
)

// Checkpoint is one tracking event for a shipment. Every field is optional;
// the empty string means the provider omitted it.
type Checkpoint struct {
	City   string `json:"city"`
	Remark string `json:"remark"`
	Date   string `json:"date"`
}

// Shipment is one tracked parcel's current state as reported by the
// provider. Field names follow the eshipz wire format.
type Shipment struct {
	TrackingNumber       string       `json:"tracking_number"`
	Slug                 string       `json:"slug"`
	Tag                  StatusTag    `json:"tag"`
	DeliveryDate         string       `json:"delivery_date"`
	ExpectedDeliveryDate string       `json:"expected_delivery_date"`
	Checkpoints          []Checkpoint `json:"checkpoints"`
}

// LatestCheckpoint returns the most recent tracking event (index 0 after
// NormalizeCheckpointOrder) and whether one exists.
func (s *Shipment) LatestCheckpoint() (Checkpoint, bool) {
	if len(s.Checkpoints) == 0 {
		return Checkpoint{}, false
	}
	return s.Checkpoints[0], true
}

// checkpointLayouts are the timestamp formats observed in provider
// checkpoint dates, tried in order.
var checkpointLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeCheckpointOrder makes the "index 0 is the latest event"
// assumption explicit. When every checkpoint carries a parseable timestamp
// the slice is stable-sorted newest-first; if any timestamp is missing or
// unparseable the provider's order is trusted as-is.
func (s *Shipment) NormalizeCheckpointOrder() {
	if len(s.Checkpoints) < 2 {
		return
	}
	times := make([]time.Time, len(s.Checkpoints))
	for i, cp := range s.Checkpoints {
		t, ok := parseCheckpointTime(cp.Date)
		if !ok {
			return
		}
		times[i] = t
	}

	type entry struct {
		t  time.Time
		cp Checkpoint
	}
	entries := make([]entry, len(s.Checkpoints))
	for i, cp := range s.Checkpoints {
		entries[i] = entry{t: times[i], cp: cp}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].t.After(entries[j].t)
	})
	for i, e := range entries {
		s.Checkpoints[i] = e.cp
	}
}

func parseCheckpointTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range checkpointLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
