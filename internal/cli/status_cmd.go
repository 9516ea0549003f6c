package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/deskcoach/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's standing progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Coach.Restore(context.Background(), time.Now()); err != nil {
				return err
			}
			fmt.Print(formatter.FormatProgress(app.Coach.Progress(time.Now())))
			return nil
		},
	}
}
