package domain

type Posture string

const (
	PostureStanding Posture = "standing"
	PostureSitting  Posture = "sitting"
	PostureUnknown  Posture = "unknown"
)

// ValidPostures is the canonical set of confirmable posture strings.
// Unknown is a startup state, not something a user can confirm.
var ValidPostures = map[string]bool{
	"standing": true, "sitting": true,
}

type ReminderKind string

const (
	ReminderStand        ReminderKind = "stand"
	ReminderSit          ReminderKind = "sit"
	ReminderPostureCheck ReminderKind = "posture_check"
)

type ActivityState string

const (
	ActivityActive ActivityState = "active"
	ActivityIdle   ActivityState = "idle"
)

type CoachState string

const (
	CoachRunning    CoachState = "running"
	CoachPaused     CoachState = "paused"
	CoachSnoozed    CoachState = "snoozed"
	CoachTerminated CoachState = "terminated"
)
