package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/deskcoach/internal/cli/formatter"
	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var days int
	var showSessions bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent daily totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("days must be positive: %w", domain.ErrInvalidInput)
			}
			ctx := context.Background()

			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			totals, err := app.History.ListRecentTotals(ctx, days)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(totals, settings.GoalStandingSeconds))

			if showSessions {
				sessions, err := app.History.ListRecentSessions(ctx, days)
				if err != nil {
					return err
				}
				fmt.Println()
				fmt.Print(formatter.FormatSessions(sessions))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of days to show")
	cmd.Flags().BoolVar(&showSessions, "sessions", false, "Also list posture sessions")

	return cmd
}
