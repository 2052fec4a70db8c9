package timestamp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"full", "2022-06-01 10:30:15", time.Date(2022, 6, 1, 10, 30, 15, 0, time.UTC), true},
		{"minutes", "2022-06-01 10:30", time.Date(2022, 6, 1, 10, 30, 0, 0, time.UTC), true},
		{"date only", "2022-06-01", time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
		{"trailing text", "2022-06-01 10:30:15 PM", time.Time{}, false},
		{"partial time", "2022-06-01 10", time.Time{}, false},
		{"invalid day", "2022-02-30", time.Time{}, false},
		{"invalid hour", "2022-06-01 25:00", time.Time{}, false},
		{"iso separator", "2022-06-01T10:30:15", time.Time{}, false},
		{"fractional seconds", "2022-06-01 10:00:00.5", time.Time{}, false},
		{"comma fraction", "2022-06-01 10:00:00,999", time.Time{}, false},
		{"nanoseconds", "2022-06-01 10:00:00.123456789", time.Time{}, false},
		{"single digit month", "2022-6-01", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
		})
	}
}

func TestFormat_RoundTrips(t *testing.T) {
	ts := time.Date(2023, 11, 5, 8, 4, 2, 0, time.UTC)

	s := Format(ts)
	assert.Equal(t, "2023-11-05 08:04:02", s)

	parsed, ok := Normalize(s)
	assert.True(t, ok)
	assert.True(t, ts.Equal(parsed))
}
