package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PostureColor returns the lipgloss style corresponding to a posture.
func PostureColor(p domain.Posture) lipgloss.Style {
	switch p {
	case domain.PostureStanding:
		return StyleGreen
	case domain.PostureSitting:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PostureIndicator returns a colored posture indicator such as "● STANDING".
func PostureIndicator(p domain.Posture) string {
	switch p {
	case domain.PostureStanding:
		return StyleGreen.Render("● STANDING")
	case domain.PostureSitting:
		return StyleBlue.Render("● SITTING")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StateIndicator returns a colored scheduler state label.
func StateIndicator(s domain.CoachState) string {
	switch s {
	case domain.CoachRunning:
		return StyleGreen.Render("running")
	case domain.CoachPaused:
		return StyleYellow.Render("paused")
	case domain.CoachSnoozed:
		return StylePurple.Render("snoozed")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
