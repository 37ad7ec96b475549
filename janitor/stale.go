package janitor

import (
	"fmt"
	"time"
)

// parseTimestamp accepts the two shapes the listing APIs emit: a
// fractional-seconds timestamp ending in Z (compute-style) and a full
// RFC 3339 timestamp with an explicit offset. Both are normalized to UTC
// so the comparison basis is the same regardless of input shape.
func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		var fallbackErr error
		t, fallbackErr = time.Parse(time.RFC3339, value)
		if fallbackErr != nil {
			return time.Time{}, fmt.Errorf("unrecognized timestamp %q: %w", value, err)
		}
	}
	return t.UTC(), nil
}

// IsStale checks whether the timestamp is more than maxAge before now.
// Timestamps in the future are never stale.
func IsStale(timestamp string, now time.Time, maxAge time.Duration) (bool, error) {
	t, err := parseTimestamp(timestamp)
	if err != nil {
		return false, err
	}
	return t.Before(now.UTC().Add(-maxAge)), nil
}
