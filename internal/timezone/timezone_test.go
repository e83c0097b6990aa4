package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Asia/Qatar", Location("").String())
	assert.Equal(t, "Asia/Qatar", Location("Mars/Olympus").String())
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
}

func TestParseScheduled(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-05-01T09:00:00Z", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-05-01T12:00:00+03:00", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)},
		// Qatar is UTC+3 all year
		{"2026-05-01T12:00", time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)},
		{"2026-05-01 12:30", time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScheduled(tt.in, DefaultTimezone)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseScheduled("tomorrow", DefaultTimezone)
	assert.ErrorIs(t, err, ErrInvalidTime)
}
