package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayHelpers(t *testing.T) {
	instant := time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, "2025-03-15", DayOf(instant))
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), StartOfDay(instant))
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), NextMidnight(instant))

	// Midnight itself belongs to the new day.
	midnight := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-16", DayOf(midnight))
	assert.Equal(t, midnight, StartOfDay(midnight))
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), NextMidnight(midnight))
}

func TestDailyTotals_WithinElapsed(t *testing.T) {
	totals := DailyTotals{Date: "2025-03-15", StandingSeconds: 1800, SittingSeconds: 1800}

	at := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)
	assert.True(t, totals.WithinElapsed(at))

	tooEarly := time.Date(2025, 3, 15, 0, 30, 0, 0, time.UTC)
	assert.False(t, totals.WithinElapsed(tooEarly))

	bad := DailyTotals{Date: "not-a-date"}
	assert.False(t, bad.WithinElapsed(at))
}

func TestProgress_GoalPct(t *testing.T) {
	assert.Equal(t, 0.5, Progress{StandingSeconds: 3600, GoalSeconds: 7200}.GoalPct())
	assert.Equal(t, 1.0, Progress{StandingSeconds: 9000, GoalSeconds: 7200}.GoalPct())
	assert.Equal(t, 0.0, Progress{StandingSeconds: 3600, GoalSeconds: 0}.GoalPct())
}
