package notify

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// LogNotifier writes reminder events to a log. It is the lowest-
// fidelity channel and never fails.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier writing to w.
func NewLogNotifier(w io.Writer) *LogNotifier {
	return &LogNotifier{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (n *LogNotifier) Notify(ctx context.Context, event domain.ReminderEvent) error {
	n.logger.InfoContext(ctx, "reminder",
		"kind", string(event.Kind),
		"title", event.Title(),
		"at", event.At,
	)
	return nil
}
