package domain

import "time"

// PostureSession is one continuous span of standing or sitting.
// ActiveSeconds counts only time during which the user was active;
// idle gaps do not accrue. EndedAt is nil while the span is open.
type PostureSession struct {
	ID            string
	Posture       Posture
	StartedAt     time.Time
	EndedAt       *time.Time
	ActiveSeconds int
}

// SessionEvent records an activity transition for the journal.
type SessionEvent struct {
	At    time.Time
	State ActivityState
}

// ReminderEvent is what the coach emits to the notifier.
type ReminderEvent struct {
	Kind ReminderKind
	At   time.Time
}

// Title returns the notification headline for the event kind.
func (e ReminderEvent) Title() string {
	switch e.Kind {
	case ReminderStand:
		return "Stand up"
	case ReminderSit:
		return "Take a seat"
	case ReminderPostureCheck:
		return "Posture check"
	default:
		return "DeskCoach"
	}
}

// Body returns the notification body text for the event kind.
func (e ReminderEvent) Body() string {
	switch e.Kind {
	case ReminderStand:
		return "You've been sitting for a while. Time to stand up."
	case ReminderSit:
		return "You've been on your feet for a while. Sitting down is fine too."
	case ReminderPostureCheck:
		return "Still in a good standing position, or slipping into a protective posture?"
	default:
		return ""
	}
}
