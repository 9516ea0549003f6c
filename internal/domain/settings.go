package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks user-supplied values rejected at the call
// boundary (bad snooze duration, malformed settings).
var ErrInvalidInput = errors.New("invalid input")

// Settings is the immutable snapshot the coach reads each tick.
// Mutation happens only through SettingsService, which validates and
// hands the engine a fresh copy.
type Settings struct {
	GoalStandingSeconds        int
	ReminderIntervalSeconds    int
	PostureCheckIntervalSeconds int
	SnoozeSeconds              int
	IdleThresholdSeconds       int
	IdleResetSeconds           int
	StandThresholdMM           int
	NotificationsEnabled       bool
	SoundEnabled               bool
}

// DefaultSettings mirrors the shipped configuration: remind after 45
// minutes seated, posture check every 30 minutes standing, 30 minute
// snooze, 2 hour standing goal.
func DefaultSettings() Settings {
	return Settings{
		GoalStandingSeconds:        2 * 60 * 60,
		ReminderIntervalSeconds:    45 * 60,
		PostureCheckIntervalSeconds: 30 * 60,
		SnoozeSeconds:              30 * 60,
		IdleThresholdSeconds:       90,
		IdleResetSeconds:           5 * 60,
		StandThresholdMM:           900,
		NotificationsEnabled:       true,
		SoundEnabled:               true,
	}
}

// Validate checks all interval fields are positive and consistent.
func (s Settings) Validate() error {
	if s.GoalStandingSeconds <= 0 {
		return fmt.Errorf("goal standing seconds must be positive: %w", ErrInvalidInput)
	}
	if s.ReminderIntervalSeconds <= 0 {
		return fmt.Errorf("reminder interval must be positive: %w", ErrInvalidInput)
	}
	if s.PostureCheckIntervalSeconds <= 0 {
		return fmt.Errorf("posture check interval must be positive: %w", ErrInvalidInput)
	}
	if s.SnoozeSeconds <= 0 {
		return fmt.Errorf("snooze duration must be positive: %w", ErrInvalidInput)
	}
	if s.IdleThresholdSeconds <= 0 {
		return fmt.Errorf("idle threshold must be positive: %w", ErrInvalidInput)
	}
	if s.IdleResetSeconds < s.IdleThresholdSeconds {
		return fmt.Errorf("idle reset threshold must be >= idle threshold: %w", ErrInvalidInput)
	}
	if s.StandThresholdMM <= 0 {
		return fmt.Errorf("stand threshold must be positive: %w", ErrInvalidInput)
	}
	return nil
}

// ReminderInterval returns the posture-change reminder cadence.
func (s Settings) ReminderInterval() time.Duration {
	return time.Duration(s.ReminderIntervalSeconds) * time.Second
}

// PostureCheckInterval returns the standing posture-check cadence.
func (s Settings) PostureCheckInterval() time.Duration {
	return time.Duration(s.PostureCheckIntervalSeconds) * time.Second
}

// IdleThreshold returns the input-idle duration above which the user
// counts as away from the desk.
func (s Settings) IdleThreshold() time.Duration {
	return time.Duration(s.IdleThresholdSeconds) * time.Second
}

// IdleReset returns the idle-gap duration that resets reminder
// countdowns, the analog of a long screen lock.
func (s Settings) IdleReset() time.Duration {
	return time.Duration(s.IdleResetSeconds) * time.Second
}
