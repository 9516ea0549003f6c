// Package watcher reduces raw input-idle samples into the Active/Idle
// signal the coach consumes. The platform-specific part is behind the
// Probe interface; the reduction itself is plain logic.
package watcher

import (
	"context"
	"time"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// Probe reports how long the user's input devices have been idle.
type Probe interface {
	// IdleFor returns the duration since the last user input.
	IdleFor(ctx context.Context) (time.Duration, error)
}

// Watcher turns idle durations into activity states using a threshold.
// A probe failure counts as active: a broken probe must never freeze
// time accounting.
type Watcher struct {
	probe     Probe
	threshold time.Duration
}

// New creates a Watcher. A nil probe always reports active.
func New(probe Probe, threshold time.Duration) *Watcher {
	return &Watcher{probe: probe, threshold: threshold}
}

// SetThreshold updates the idle threshold, e.g. after a settings change.
func (w *Watcher) SetThreshold(threshold time.Duration) {
	w.threshold = threshold
}

// Sample returns the current activity state.
func (w *Watcher) Sample(ctx context.Context) domain.ActivityState {
	if w.probe == nil {
		return domain.ActivityActive
	}
	idle, err := w.probe.IdleFor(ctx)
	if err != nil {
		return domain.ActivityActive
	}
	if idle >= w.threshold {
		return domain.ActivityIdle
	}
	return domain.ActivityActive
}

// StaticProbe reports a fixed idle duration. Used in tests and as the
// fallback on platforms without a usable idle probe.
type StaticProbe struct {
	Idle time.Duration
	Err  error
}

func (p StaticProbe) IdleFor(context.Context) (time.Duration, error) {
	return p.Idle, p.Err
}
