package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m"},
		{12 * 60, "12m"},
		{3600, "1h00m"},
		{3900, "1h05m"},
		{2*3600 + 30*60, "2h30m"},
		{-10, "0s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestRenderProgress_ClampsAndCounts(t *testing.T) {
	bar := RenderProgress(0.5, 10)
	assert.Contains(t, bar, " 50%")
	assert.Equal(t, 5, strings.Count(bar, filledBlock))
	assert.Equal(t, 5, strings.Count(bar, emptyBlock))

	assert.Contains(t, RenderProgress(-0.2, 10), "  0%")
	assert.Contains(t, RenderProgress(1.7, 10), "100%")
	assert.Equal(t, 10, strings.Count(RenderProgress(1.7, 10), filledBlock))
}

func TestFormatProgress_IncludesDurationsAndPosture(t *testing.T) {
	out := FormatProgress(domain.Progress{
		Date:            "2025-03-15",
		StandingSeconds: 3900,
		SittingSeconds:  12 * 60,
		GoalSeconds:     2 * 3600,
		Posture:         domain.PostureStanding,
		State:           domain.CoachRunning,
	})

	assert.Contains(t, out, "2025-03-15")
	assert.Contains(t, out, "1h05m")
	assert.Contains(t, out, "12m")
	assert.Contains(t, out, "2h00m")
	assert.Contains(t, out, "STANDING")
}

func TestFormatHistory_EmptyAndPopulated(t *testing.T) {
	assert.Contains(t, FormatHistory(nil, 7200), "No recorded days yet.")

	out := FormatHistory([]*domain.DailyTotals{
		{Date: "2025-03-15", StandingSeconds: 3600, SittingSeconds: 7200},
	}, 7200)
	assert.Contains(t, out, "2025-03-15")
	assert.Contains(t, out, "1h00m")
	assert.Contains(t, out, " 50%")
}

func TestFormatSessions_OpenAndClosed(t *testing.T) {
	assert.Contains(t, FormatSessions(nil), "No recorded sessions yet.")

	start := time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)
	end := start.Add(25 * time.Minute)
	out := FormatSessions([]*domain.PostureSession{
		{Posture: domain.PostureStanding, StartedAt: start, EndedAt: &end, ActiveSeconds: 1400},
		{Posture: domain.PostureSitting, StartedAt: end},
	})

	assert.Contains(t, out, "09:30")
	assert.Contains(t, out, "09:55")
	assert.Contains(t, out, "open")
	assert.Contains(t, out, "standing")
	assert.Contains(t, out, "sitting")
}
