package janitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStale(t *testing.T) {
	now := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)
	maxAge := 24 * time.Hour

	tests := []struct {
		name      string
		timestamp string
		want      bool
	}{
		{
			name:      "24h plus one second old",
			timestamp: now.Add(-24*time.Hour - time.Second).Format(time.RFC3339),
			want:      true,
		},
		{
			name:      "23h59m old",
			timestamp: now.Add(-23*time.Hour - 59*time.Minute).Format(time.RFC3339),
			want:      false,
		},
		{
			name:      "exactly 24h old",
			timestamp: now.Add(-24 * time.Hour).Format(time.RFC3339),
			want:      false,
		},
		{
			name:      "two days in the future",
			timestamp: now.Add(48 * time.Hour).Format(time.RFC3339),
			want:      false,
		},
		{
			name:      "fractional seconds with trailing Z",
			timestamp: "2020-01-01T00:00:00.000Z",
			want:      true,
		},
		{
			name:      "microsecond fraction",
			timestamp: "2020-01-01T12:34:56.789012Z",
			want:      true,
		},
		{
			name:      "explicit offset",
			timestamp: "2020-01-02T01:00:00+02:00",
			want:      true,
		},
		{
			name:      "explicit offset still fresh in UTC",
			timestamp: "2020-01-02T02:00:00+02:00",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsStale(tt.timestamp, now, maxAge)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsStaleRejectsGarbage(t *testing.T) {
	now := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)

	for _, bad := range []string{"", "yesterday", "2020-01-01", "01/02/2020 15:04"} {
		_, err := IsStale(bad, now, 24*time.Hour)
		assert.Error(t, err, "timestamp %q", bad)
	}
}

func TestParseTimestampNormalizesToUTC(t *testing.T) {
	got, err := parseTimestamp("2020-06-01T10:00:00.000-07:00")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2020, 6, 1, 17, 0, 0, 0, time.UTC), got)
}
