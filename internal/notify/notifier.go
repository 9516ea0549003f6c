// Package notify delivers reminder events to the user. The concrete
// backend is picked once at startup by capability probing; delivery
// failures degrade to a lower-fidelity channel and are logged, never
// propagated back to the coach.
package notify

import (
	"context"
	"errors"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// ErrDeliveryFailed indicates a backend could not show the notification.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// ErrNoBackend indicates no desktop notification tool is installed.
var ErrNoBackend = errors.New("no notification backend available")

// Notifier renders a reminder event for the user.
type Notifier interface {
	Notify(ctx context.Context, event domain.ReminderEvent) error
}
