package ports

import "context"

// TrackingService turns a tracking number into a human-readable status
// summary. TrackShipment is total: it returns a string for every input and
// never propagates an error; all failure states are encoded in the text.
type TrackingService interface {
	TrackShipment(ctx context.Context, trackingNumber string) string
}
