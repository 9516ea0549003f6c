package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// FormatProgress renders today's standing/sitting progress block.
func FormatProgress(p domain.Progress) string {
	var b strings.Builder

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s\n", PostureIndicator(p.Posture), Dim(p.Date))
	fmt.Fprintf(&b, "Standing  %s  %s\n",
		Bold(FormatDuration(p.StandingSeconds)),
		RenderProgress(p.GoalPct(), 20))
	fmt.Fprintf(&b, "Sitting   %s\n", Bold(FormatDuration(p.SittingSeconds)))
	fmt.Fprintf(&b, "Goal      %s standing\n", FormatDuration(p.GoalSeconds))

	return b.String()
}

// FormatHistory renders recent daily totals, newest first.
func FormatHistory(totals []*domain.DailyTotals, goalSeconds int) string {
	var b strings.Builder

	b.WriteString(Header("History"))
	b.WriteString("\n")

	if len(totals) == 0 {
		b.WriteString(Dim("No recorded days yet.") + "\n")
		return b.String()
	}

	for _, t := range totals {
		pct := 0.0
		if goalSeconds > 0 {
			pct = float64(t.StandingSeconds) / float64(goalSeconds)
			if pct > 1 {
				pct = 1
			}
		}
		fmt.Fprintf(&b, "%s  stand %-7s sit %-7s %s\n",
			t.Date,
			FormatDuration(t.StandingSeconds),
			FormatDuration(t.SittingSeconds),
			RenderProgress(pct, 12))
	}

	return b.String()
}

// FormatSessions renders recent posture sessions, newest first.
func FormatSessions(sessions []*domain.PostureSession) string {
	var b strings.Builder

	b.WriteString(Header("Sessions"))
	b.WriteString("\n")

	if len(sessions) == 0 {
		b.WriteString(Dim("No recorded sessions yet.") + "\n")
		return b.String()
	}

	for _, s := range sessions {
		end := "open"
		if s.EndedAt != nil {
			end = s.EndedAt.Format("15:04")
		}
		fmt.Fprintf(&b, "%s  %s–%-5s  %s active %s\n",
			s.StartedAt.Format("2006-01-02"),
			s.StartedAt.Format("15:04"),
			end,
			PostureColor(s.Posture).Render(fmt.Sprintf("%-8s", string(s.Posture))),
			FormatDuration(s.ActiveSeconds))
	}

	return b.String()
}
