package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// ToastNotifier shows desktop toast notifications by shelling out to
// the platform's notification tool.
type ToastNotifier struct {
	goos  string
	path  string
	sound bool
}

// toastTools maps GOOS to the command used for desktop notifications.
var toastTools = map[string]string{
	"linux":   "notify-send",
	"darwin":  "osascript",
	"windows": "powershell",
}

// NewToastNotifier probes the platform for a usable notification tool.
// Returns ErrNoBackend when none is installed.
func NewToastNotifier(sound bool) (*ToastNotifier, error) {
	tool, ok := toastTools[runtime.GOOS]
	if !ok {
		return nil, ErrNoBackend
	}
	path, err := exec.LookPath(tool)
	if err != nil {
		return nil, ErrNoBackend
	}
	return &ToastNotifier{goos: runtime.GOOS, path: path, sound: sound}, nil
}

// SetSound toggles the notification sound for subsequent deliveries.
func (n *ToastNotifier) SetSound(sound bool) { n.sound = sound }

func (n *ToastNotifier) Notify(ctx context.Context, event domain.ReminderEvent) error {
	cmd := n.command(ctx, event.Title(), event.Body())
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

func (n *ToastNotifier) command(ctx context.Context, title, body string) *exec.Cmd {
	switch n.goos {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		if n.sound {
			script += ` sound name "Glass"`
		}
		return exec.CommandContext(ctx, n.path, "-e", script)
	case "windows":
		script := fmt.Sprintf(
			`[System.Reflection.Assembly]::LoadWithPartialName('System.Windows.Forms') | Out-Null; `+
				`$n = New-Object System.Windows.Forms.NotifyIcon; `+
				`$n.Icon = [System.Drawing.SystemIcons]::Information; `+
				`$n.Visible = $true; $n.ShowBalloonTip(10000, %q, %q, 'Info')`,
			title, body)
		return exec.CommandContext(ctx, n.path, "-NoProfile", "-Command", script)
	default:
		args := []string{"--app-name", "DeskCoach"}
		if !n.sound {
			args = append(args, "--hint", "string:suppress-sound:true")
		}
		args = append(args, title, body)
		return exec.CommandContext(ctx, n.path, args...)
	}
}
