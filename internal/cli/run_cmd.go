package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/deskcoach/internal/desk"
	"github.com/alexanderramin/deskcoach/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var tickSeconds int
	var deskPollSeconds int
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the coach loop",
		Long: `Run the coach loop in the foreground. With an interactive terminal a
live dashboard is shown; otherwise the loop runs headless and reminders
go to the desktop notifier.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tickSeconds <= 0 {
				return fmt.Errorf("tick interval must be positive: %w", domain.ErrInvalidInput)
			}
			if deskPollSeconds <= 0 {
				return fmt.Errorf("desk poll interval must be positive: %w", domain.ErrInvalidInput)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.Coach.Restore(ctx, time.Now()); err != nil {
				return fmt.Errorf("restoring today's totals: %w", err)
			}

			if !headless && app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(ctx, app, time.Duration(tickSeconds)*time.Second,
					time.Duration(deskPollSeconds)*time.Second)
			}
			return runHeadless(ctx, app, time.Duration(tickSeconds)*time.Second,
				time.Duration(deskPollSeconds)*time.Second)
		},
	}

	cmd.Flags().IntVar(&tickSeconds, "tick", 1, "Tick interval in seconds")
	cmd.Flags().IntVar(&deskPollSeconds, "desk-poll", 60, "Desk height poll interval in seconds")
	cmd.Flags().BoolVar(&headless, "headless", false, "Disable the dashboard even on a terminal")

	return cmd
}

func runHeadless(ctx context.Context, app *App, tick, deskPoll time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	lastDeskPoll := time.Time{}
	for {
		select {
		case <-ctx.Done():
			return app.Coach.Shutdown(context.Background(), time.Now())
		case now := <-ticker.C:
			if app.DeskHeight != nil && now.Sub(lastDeskPoll) >= deskPoll {
				lastDeskPoll = now
				pollDesk(ctx, app, now)
			}
			activity := sampleActivity(ctx, app)
			if err := app.Coach.Tick(ctx, now, activity); err != nil {
				return err
			}
		}
	}
}

// pollDesk fetches the desk height and feeds the inferred posture into
// the coach. An unreachable controller is not an error; manual
// confirmation still works.
func pollDesk(ctx context.Context, app *App, now time.Time) {
	mm, err := app.DeskHeight(ctx)
	if err != nil {
		return
	}
	posture := desk.InferPosture(mm, app.Coach.Settings().StandThresholdMM)
	_ = app.Coach.ConfirmPosture(ctx, posture, now)
}

func sampleActivity(ctx context.Context, app *App) domain.ActivityState {
	if app.Watcher == nil {
		return domain.ActivityActive
	}
	return app.Watcher.Sample(ctx)
}

func runTUI(ctx context.Context, app *App, tick, deskPoll time.Duration) error {
	model := newCoachModel(app, tick, deskPoll)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()

	shutdownErr := app.Coach.Shutdown(context.Background(), time.Now())
	if err != nil && ctx.Err() == nil {
		return err
	}
	return shutdownErr
}
