package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/deskcoach/internal/cli/formatter"
	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatSettings(settings))
			return nil
		},
	}

	cmd.AddCommand(newSettingsEditCmd(app))
	return cmd
}

func newSettingsEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit settings interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			goalMin := strconv.Itoa(settings.GoalStandingSeconds / 60)
			remindMin := strconv.Itoa(settings.ReminderIntervalSeconds / 60)
			checkMin := strconv.Itoa(settings.PostureCheckIntervalSeconds / 60)
			snoozeMin := strconv.Itoa(settings.SnoozeSeconds / 60)
			notifs := settings.NotificationsEnabled
			sound := settings.SoundEnabled

			form := huh.NewForm(
				huh.NewGroup(
					minutesInput("Daily standing goal (minutes)", "120", &goalMin),
					minutesInput("Remind after sitting (minutes)", "45", &remindMin),
					minutesInput("Posture check while standing (minutes)", "30", &checkMin),
					minutesInput("Snooze duration (minutes)", "30", &snoozeMin),
					huh.NewConfirm().Title("Desktop notifications").Value(&notifs),
					huh.NewConfirm().Title("Notification sound").Value(&sound),
				),
			).WithTheme(deskcoachHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			settings.GoalStandingSeconds = atoiMinutes(goalMin)
			settings.ReminderIntervalSeconds = atoiMinutes(remindMin)
			settings.PostureCheckIntervalSeconds = atoiMinutes(checkMin)
			settings.SnoozeSeconds = atoiMinutes(snoozeMin)
			settings.NotificationsEnabled = notifs
			settings.SoundEnabled = sound

			if err := app.Settings.Update(ctx, settings); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("Settings saved."))
			return nil
		},
	}
}

// atoiMinutes converts a validated minutes string to seconds.
func atoiMinutes(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n * 60
}

func formatSettings(s domain.Settings) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Settings"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Daily standing goal     %s\n", formatter.FormatDuration(s.GoalStandingSeconds))
	fmt.Fprintf(&b, "Remind after sitting    %s\n", formatter.FormatDuration(s.ReminderIntervalSeconds))
	fmt.Fprintf(&b, "Posture check cadence   %s\n", formatter.FormatDuration(s.PostureCheckIntervalSeconds))
	fmt.Fprintf(&b, "Snooze duration         %s\n", formatter.FormatDuration(s.SnoozeSeconds))
	fmt.Fprintf(&b, "Idle threshold          %s\n", formatter.FormatDuration(s.IdleThresholdSeconds))
	fmt.Fprintf(&b, "Idle reset threshold    %s\n", formatter.FormatDuration(s.IdleResetSeconds))
	fmt.Fprintf(&b, "Stand threshold         %d mm\n", s.StandThresholdMM)
	fmt.Fprintf(&b, "Notifications           %s\n", onOff(s.NotificationsEnabled))
	fmt.Fprintf(&b, "Sound                   %s\n", onOff(s.SoundEnabled))
	return b.String()
}

func onOff(b bool) string {
	if b {
		return formatter.StyleGreen.Render("on")
	}
	return formatter.Dim("off")
}
