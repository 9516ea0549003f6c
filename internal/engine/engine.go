// Package engine implements the reminder scheduler state machine. It is
// pure in-memory logic: ticks and commands go in, reminder events and
// rows to persist come out. All I/O lives in the service layer.
//
// The engine is single-threaded by contract: ticks and UI commands must
// arrive from one logical thread of control.
package engine

import (
	"fmt"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/google/uuid"
)

// TickResult carries everything a tick produced: reminder events to
// deliver and rows the service should persist.
type TickResult struct {
	Events          []domain.ReminderEvent
	ClosedSessions  []domain.PostureSession
	FinalizedTotals []domain.DailyTotals
	ActivityChanged *domain.SessionEvent
}

// ConfirmResult carries the session closed by a posture confirmation,
// or nil when the confirmation was an idempotent no-op.
type ConfirmResult struct {
	Closed *domain.PostureSession
}

// Engine owns the posture/session state machine and decides, once per
// tick, whether a reminder should fire.
type Engine struct {
	settings domain.Settings

	state   domain.CoachState
	posture domain.Posture
	session *domain.PostureSession
	totals  domain.DailyTotals

	lastTick     time.Time
	lastActivity domain.ActivityState

	// remindDue is the posture-change reminder deadline: "stand up"
	// while sitting, "take a seat" while standing. checkDue is the
	// posture-check cadence, meaningful only while standing.
	remindDue time.Time
	checkDue  time.Time

	snoozedUntil   time.Time
	suppressedKind domain.ReminderKind

	pausedAt time.Time

	// idleRun tracks the length of the current consecutive idle gap so
	// a long break resets reminder countdowns on return.
	idleRun      time.Duration
	pendingReset bool
}

// New creates an engine in the Running state with Unknown posture.
// Nothing accrues and no reminders arm until the first posture
// confirmation.
func New(settings domain.Settings) *Engine {
	return &Engine{
		settings:     settings,
		state:        domain.CoachRunning,
		posture:      domain.PostureUnknown,
		lastActivity: domain.ActivityActive,
	}
}

// RestoreTotals seeds today's accumulated totals, typically loaded from
// the store at startup so a restart does not zero the day.
func (e *Engine) RestoreTotals(t domain.DailyTotals) {
	e.totals = t
}

// State returns the current scheduler state.
func (e *Engine) State() domain.CoachState {
	if e.state == domain.CoachSnoozed && !e.snoozedUntil.IsZero() && !e.lastTick.Before(e.snoozedUntil) {
		return domain.CoachRunning
	}
	return e.state
}

// Posture returns the current confirmed posture.
func (e *Engine) Posture() domain.Posture { return e.posture }

// Totals returns a snapshot of today's accumulated totals.
func (e *Engine) Totals() domain.DailyTotals { return e.totals }

// Settings returns the current settings snapshot.
func (e *Engine) Settings() domain.Settings { return e.settings }

// SetSettings replaces the settings snapshot. Armed deadlines keep
// their old values; new intervals apply from the next reschedule.
func (e *Engine) SetSettings(s domain.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.settings = s
	return nil
}

// OnTick advances the state machine to now. It accrues active time for
// the open session, handles day rollover, expires snooze windows, and
// fires at most one reminder.
func (e *Engine) OnTick(now time.Time, activity domain.ActivityState) TickResult {
	var res TickResult

	if e.state == domain.CoachTerminated {
		return res
	}

	if e.totals.Date == "" {
		e.totals.Date = domain.DayOf(now)
	}

	if e.lastTick.IsZero() {
		e.lastTick = now
		e.lastActivity = activity
		return res
	}
	if now.Before(e.lastTick) {
		// Clock went backwards (NTP step, manual change). Re-baseline
		// rather than accruing negative time.
		e.lastTick = now
		return res
	}

	if activity != e.lastActivity {
		ev := domain.SessionEvent{At: now, State: activity}
		res.ActivityChanged = &ev
	}

	e.advance(now, activity, &res)
	e.expireSnooze(now, &res)
	e.fireDue(now, &res)

	e.lastTick = now
	e.lastActivity = activity
	return res
}

// advance accrues the [lastTick, now) interval, splitting at day
// boundaries. The interval is attributed to the activity state observed
// at its end, matching the sampling model of the input probe.
func (e *Engine) advance(now time.Time, activity domain.ActivityState, res *TickResult) {
	cursor := e.lastTick
	for cursor.Before(now) {
		boundary := domain.NextMidnight(cursor)
		segEnd := now
		crossed := false
		if boundary.Before(now) || boundary.Equal(now) {
			segEnd = boundary
			crossed = true
		}

		e.accrue(segEnd.Sub(cursor), activity)

		if crossed {
			e.rollover(boundary, res)
		}
		cursor = segEnd
	}

	if activity == domain.ActivityIdle {
		dt := now.Sub(e.lastTick)
		e.idleRun += dt
		// Countdowns pause while the user is away.
		e.shiftDeadlines(dt)
		if e.idleRun >= e.settings.IdleReset() {
			e.pendingReset = true
		}
	} else {
		if e.pendingReset {
			// A long break ended: restart reminder countdowns from a
			// full interval instead of resuming a stale streak.
			e.rearm(now)
			e.pendingReset = false
		}
		e.idleRun = 0
	}
}

// accrue adds dt of active time to the open session and today's totals.
func (e *Engine) accrue(dt time.Duration, activity domain.ActivityState) {
	if activity != domain.ActivityActive || dt <= 0 {
		return
	}
	secs := int(dt.Seconds())
	switch e.posture {
	case domain.PostureStanding:
		e.totals.StandingSeconds += secs
	case domain.PostureSitting:
		e.totals.SittingSeconds += secs
	default:
		return
	}
	if e.session != nil {
		e.session.ActiveSeconds += secs
	}
}

// rollover finalizes the expiring day at midnight and opens a fresh
// totals row and session for the new day.
func (e *Engine) rollover(midnight time.Time, res *TickResult) {
	res.FinalizedTotals = append(res.FinalizedTotals, e.totals)

	if e.session != nil {
		end := midnight
		e.session.EndedAt = &end
		res.ClosedSessions = append(res.ClosedSessions, *e.session)
		e.session = &domain.PostureSession{
			ID:        uuid.New().String(),
			Posture:   e.posture,
			StartedAt: midnight,
		}
	}

	e.totals = domain.DailyTotals{Date: domain.DayOf(midnight)}
}

// expireSnooze transitions Snoozed back to Running once the window has
// passed and fires the suppressed reminder if it is still relevant,
// i.e. posture has not already changed in the intended direction.
func (e *Engine) expireSnooze(now time.Time, res *TickResult) {
	if e.state != domain.CoachSnoozed || now.Before(e.snoozedUntil) {
		return
	}
	e.state = domain.CoachRunning
	e.snoozedUntil = time.Time{}

	kind := e.suppressedKind
	e.suppressedKind = ""
	if kind == "" || kind != e.pendingKind() {
		return
	}
	e.emit(kind, now, res)
}

// pendingKind returns the posture-change reminder implied by the
// current posture, or "" when posture is unknown.
func (e *Engine) pendingKind() domain.ReminderKind {
	switch e.posture {
	case domain.PostureSitting:
		return domain.ReminderStand
	case domain.PostureStanding:
		return domain.ReminderSit
	default:
		return ""
	}
}

// fireDue emits at most one reminder per tick. When a posture-change
// reminder and a posture check fall due together, the posture-change
// reminder wins; the check timer is rescheduled either way.
func (e *Engine) fireDue(now time.Time, res *TickResult) {
	if e.posture == domain.PostureUnknown {
		return
	}

	remindIsDue := !e.remindDue.IsZero() && !now.Before(e.remindDue)
	checkIsDue := e.posture == domain.PostureStanding && !e.checkDue.IsZero() && !now.Before(e.checkDue)

	switch e.state {
	case domain.CoachRunning:
		if remindIsDue {
			e.emit(e.pendingKind(), now, res)
			if checkIsDue {
				e.checkDue = now.Add(e.settings.PostureCheckInterval())
			}
			return
		}
		if checkIsDue {
			e.emit(domain.ReminderPostureCheck, now, res)
		}
	case domain.CoachSnoozed:
		// Remember what fell due inside the window so expiry can
		// re-fire it if still relevant. Posture checks are secondary
		// information and stay silent.
		if remindIsDue {
			e.suppressedKind = e.pendingKind()
			e.remindDue = now.Add(e.settings.ReminderInterval())
		}
		if checkIsDue {
			e.checkDue = now.Add(e.settings.PostureCheckInterval())
		}
	}
}

// emit appends a reminder event and reschedules its timer.
func (e *Engine) emit(kind domain.ReminderKind, now time.Time, res *TickResult) {
	res.Events = append(res.Events, domain.ReminderEvent{Kind: kind, At: now})
	switch kind {
	case domain.ReminderPostureCheck:
		e.checkDue = now.Add(e.settings.PostureCheckInterval())
	default:
		e.remindDue = now.Add(e.settings.ReminderInterval())
	}
}

// ConfirmPosture closes the current session and opens a new one of the
// confirmed posture, resetting reminder baselines. Confirming the
// already-current posture is a no-op.
func (e *Engine) ConfirmPosture(p domain.Posture, now time.Time) (ConfirmResult, error) {
	var res ConfirmResult
	if e.state == domain.CoachTerminated {
		return res, nil
	}
	if !domain.ValidPostures[string(p)] {
		return res, fmt.Errorf("posture %q: %w", p, domain.ErrInvalidInput)
	}
	if p == e.posture {
		return res, nil
	}

	if e.totals.Date == "" {
		e.totals.Date = domain.DayOf(now)
	}

	// Attribute the in-flight slice to the outgoing posture before the
	// boundary, so confirmation between ticks loses no time.
	if !e.lastTick.IsZero() && now.After(e.lastTick) {
		e.accrue(now.Sub(e.lastTick), e.lastActivity)
		e.lastTick = now
	}

	if e.session != nil {
		end := now
		e.session.EndedAt = &end
		closed := *e.session
		res.Closed = &closed
	}

	e.session = &domain.PostureSession{
		ID:        uuid.New().String(),
		Posture:   p,
		StartedAt: now,
	}
	e.posture = p
	e.rearm(now)
	return res, nil
}

// rearm resets reminder deadlines to a full interval from now.
func (e *Engine) rearm(now time.Time) {
	e.remindDue = now.Add(e.settings.ReminderInterval())
	if e.posture == domain.PostureStanding {
		e.checkDue = now.Add(e.settings.PostureCheckInterval())
	} else {
		e.checkDue = time.Time{}
	}
}

// Pause stops reminder firing. Accrual continues; posture does not
// change just because reminders are muted.
func (e *Engine) Pause() {
	if e.state != domain.CoachRunning {
		return
	}
	e.state = domain.CoachPaused
	e.pausedAt = e.lastTick
}

// Resume recomputes deadlines relative to the resume point so the next
// reminder lands a full pause-length later, never immediately.
func (e *Engine) Resume() {
	if e.state != domain.CoachPaused {
		return
	}
	e.state = domain.CoachRunning
	if !e.pausedAt.IsZero() {
		e.shiftDeadlines(e.lastTick.Sub(e.pausedAt))
	}
	e.pausedAt = time.Time{}
}

// Snooze suppresses reminders for d and re-fires the pending reminder
// at expiry if it is still relevant. Non-positive durations are
// rejected.
func (e *Engine) Snooze(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("snooze duration %v: %w", d, domain.ErrInvalidInput)
	}
	if e.state == domain.CoachTerminated || e.state == domain.CoachPaused {
		return nil
	}
	e.state = domain.CoachSnoozed
	e.snoozedUntil = e.lastTick.Add(d)
	e.suppressedKind = e.pendingKind()
	return nil
}

// Close terminates the engine. Idempotent; later ticks and commands
// are ignored.
func (e *Engine) Close() {
	e.state = domain.CoachTerminated
}

// Shutdown accrues the in-flight slice, closes the open session at now
// and terminates the engine. The returned result carries the rows the
// caller should flush to the store. Safe to call more than once; only
// the first call returns work.
func (e *Engine) Shutdown(now time.Time) TickResult {
	var res TickResult
	if e.state == domain.CoachTerminated {
		return res
	}
	if !e.lastTick.IsZero() && now.After(e.lastTick) {
		e.accrue(now.Sub(e.lastTick), e.lastActivity)
		e.lastTick = now
	}
	if e.session != nil {
		end := now
		e.session.EndedAt = &end
		res.ClosedSessions = append(res.ClosedSessions, *e.session)
		e.session = nil
	}
	e.state = domain.CoachTerminated
	return res
}

// Progress returns today's accumulated durations including the
// in-flight unflushed slice since the last tick. Pure read.
func (e *Engine) Progress(now time.Time) domain.Progress {
	p := domain.Progress{
		Date:            e.totals.Date,
		StandingSeconds: e.totals.StandingSeconds,
		SittingSeconds:  e.totals.SittingSeconds,
		GoalSeconds:     e.settings.GoalStandingSeconds,
		Posture:         e.posture,
		State:           e.State(),
	}
	if !e.lastTick.IsZero() && now.After(e.lastTick) && e.lastActivity == domain.ActivityActive &&
		domain.DayOf(now) == e.totals.Date {
		inflight := int(now.Sub(e.lastTick).Seconds())
		switch e.posture {
		case domain.PostureStanding:
			p.StandingSeconds += inflight
		case domain.PostureSitting:
			p.SittingSeconds += inflight
		}
	}
	return p
}

// shiftDeadlines pushes every pending deadline forward by d.
func (e *Engine) shiftDeadlines(d time.Duration) {
	if !e.remindDue.IsZero() {
		e.remindDue = e.remindDue.Add(d)
	}
	if !e.checkDue.IsZero() {
		e.checkDue = e.checkDue.Add(d)
	}
	if !e.snoozedUntil.IsZero() {
		e.snoozedUntil = e.snoozedUntil.Add(d)
	}
}
