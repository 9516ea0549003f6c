package notify

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// FallbackNotifier tries each backend in order until one delivers.
// Failures along the chain are logged and swallowed; the final backend
// in the chain should be one that cannot fail.
type FallbackNotifier struct {
	chain  []Notifier
	logger *slog.Logger
}

// NewFallbackNotifier builds a delivery chain. logW receives fallback
// diagnostics; pass io.Discard to silence them.
func NewFallbackNotifier(logW io.Writer, chain ...Notifier) *FallbackNotifier {
	return &FallbackNotifier{
		chain:  chain,
		logger: slog.New(slog.NewTextHandler(logW, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func (n *FallbackNotifier) Notify(ctx context.Context, event domain.ReminderEvent) error {
	var lastErr error
	for _, backend := range n.chain {
		if backend == nil {
			continue
		}
		if err := backend.Notify(ctx, event); err != nil {
			lastErr = err
			n.logger.WarnContext(ctx, "notification backend failed, falling back",
				"kind", string(event.Kind), "error", err)
			continue
		}
		return nil
	}
	return lastErr
}
