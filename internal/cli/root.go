package cli

import (
	"context"

	"github.com/alexanderramin/deskcoach/internal/service"
	"github.com/alexanderramin/deskcoach/internal/watcher"
	"github.com/spf13/cobra"
)

// DeskHeightFunc fetches the current desk height in millimeters.
type DeskHeightFunc func(ctx context.Context) (int, error)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Coach    service.CoachService
	History  service.HistoryService
	Settings service.SettingsService

	// Watcher samples activity for the run loop.
	Watcher *watcher.Watcher

	// DeskHeight polls the desk controller, nil when not configured.
	// It returns the current height in millimeters.
	DeskHeight DeskHeightFunc

	// IsInteractive reports whether stdin/stdout is an interactive
	// terminal; the run command picks TUI vs headless from it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "deskcoach" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "deskcoach",
		Short: "Stand/sit coach with reminders and daily goals",
	}

	root.AddCommand(
		newRunCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newSettingsCmd(app),
	)

	return root
}
