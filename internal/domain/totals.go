package domain

import "time"

// DateLayout is how calendar days are keyed in the store.
const DateLayout = "2006-01-02"

// DailyTotals is one row of accumulated posture time per calendar day.
type DailyTotals struct {
	Date            string
	StandingSeconds int
	SittingSeconds  int
}

// DayOf returns the DailyTotals date key for the given instant.
func DayOf(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextMidnight returns the first instant of the day after t.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// TotalSeconds is standing plus sitting time for the day.
func (d DailyTotals) TotalSeconds() int {
	return d.StandingSeconds + d.SittingSeconds
}

// WithinElapsed reports whether the accumulated totals fit inside the
// wall-clock time elapsed since the start of the day. Totals can never
// exceed elapsed time; idle exclusion only makes them smaller.
func (d DailyTotals) WithinElapsed(now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, d.Date, now.Location())
	if err != nil {
		return false
	}
	elapsed := int(now.Sub(day).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}
	return d.TotalSeconds() <= elapsed
}

// Progress is the read-only view handed to the UI.
type Progress struct {
	Date            string
	StandingSeconds int
	SittingSeconds  int
	GoalSeconds     int
	Posture         Posture
	State           CoachState
}

// GoalPct returns standing progress against the daily goal in [0, 1].
func (p Progress) GoalPct() float64 {
	if p.GoalSeconds <= 0 {
		return 0
	}
	pct := float64(p.StandingSeconds) / float64(p.GoalSeconds)
	if pct > 1 {
		pct = 1
	}
	return pct
}
