package ports

import (
	"context"
	"encoding/json"
)

// TrackingFetcher performs the single outbound call to the tracking
// provider. On success it returns the raw response body (guaranteed to be
// valid JSON, but of unverified shape). Every failure mode (network error,
// timeout, non-2xx status, unparseable body) collapses into one opaque
// error; callers must not distinguish causes.
type TrackingFetcher interface {
	Fetch(ctx context.Context, trackingNumber string) (json.RawMessage, error)
}
