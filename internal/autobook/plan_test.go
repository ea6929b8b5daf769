package autobook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name       string
		today      time.Time
		wantFriday time.Time
		wantMonday time.Time
	}{
		{
			name:       "from a Monday",
			today:      time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
			wantFriday: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "mid-week lands in the same target week",
			today:      time.Date(2026, 8, 26, 17, 30, 0, 0, time.UTC),
			wantFriday: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "from a Sunday",
			today:      time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
			wantFriday: time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "next Monday rolls the target week over",
			today:      time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC),
			wantFriday: time.Date(2026, 9, 25, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plan(tt.today)
			require.Len(t, got, 2)
			// Friday first: it is the scarcer slot.
			assert.Equal(t, tt.wantFriday, got[0])
			assert.Equal(t, tt.wantMonday, got[1])
			assert.Equal(t, time.Friday, got[0].Weekday())
			assert.Equal(t, time.Monday, got[1].Weekday())
		})
	}
}

func TestNextWeekday(t *testing.T) {
	monday := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	t.Run("strictly after", func(t *testing.T) {
		next := NextWeekday(monday, time.Monday)
		assert.Equal(t, time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), next)
	})

	t.Run("later this week", func(t *testing.T) {
		next := NextWeekday(monday, time.Friday)
		assert.Equal(t, time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC), next)
	})
}
