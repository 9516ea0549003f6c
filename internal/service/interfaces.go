package service

import (
	"context"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// CoachService drives the reminder engine and fans its output out to
// the notifier and the store. All methods must be called from one
// logical thread of control.
type CoachService interface {
	// Restore seeds the engine with today's persisted totals.
	Restore(ctx context.Context, now time.Time) error

	// Tick advances the engine to now with the sampled activity state.
	// Persistence failures are retried on later ticks and never fail
	// the tick itself.
	Tick(ctx context.Context, now time.Time, activity domain.ActivityState) error

	// ConfirmPosture records a posture change at now. Confirming the
	// current posture is a no-op.
	ConfirmPosture(ctx context.Context, p domain.Posture, now time.Time) error

	Pause()
	Resume()
	Snooze(d time.Duration) error

	// Progress returns today's durations for display. Pure read.
	Progress(now time.Time) domain.Progress

	// Settings returns the engine's current settings snapshot.
	Settings() domain.Settings

	// ApplySettings swaps the engine's settings snapshot after a
	// settings change.
	ApplySettings(s domain.Settings) error

	// Shutdown flushes the open session and halts tick processing.
	// Idempotent.
	Shutdown(ctx context.Context, now time.Time) error
}

// HistoryService reads persisted history for display.
type HistoryService interface {
	ListRecentTotals(ctx context.Context, days int) ([]*domain.DailyTotals, error)
	ListRecentSessions(ctx context.Context, days int) ([]*domain.PostureSession, error)
}

// SettingsService loads and mutates the persisted settings row.
type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, s domain.Settings) error
}
