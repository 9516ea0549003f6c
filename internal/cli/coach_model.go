package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/deskcoach/internal/cli/formatter"
	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// coachKeyMap defines the dashboard key bindings.
type coachKeyMap struct {
	Stand  key.Binding
	Sit    key.Binding
	Pause  key.Binding
	Resume key.Binding
	Snooze key.Binding
	Quit   key.Binding
}

func defaultCoachKeyMap() coachKeyMap {
	return coachKeyMap{
		Stand:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "I'm standing")),
		Sit:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "I'm sitting")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Resume: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "resume")),
		Snooze: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "snooze")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tickMsg carries the wall-clock instant of a dashboard tick.
type tickMsg time.Time

// coachModel is the bubbletea Model for the live dashboard.
type coachModel struct {
	app      *App
	tick     time.Duration
	deskPoll time.Duration
	keys     coachKeyMap
	goalBar  progress.Model

	prog         domain.Progress
	lastDeskPoll time.Time
	flash        string
	width        int
	quitting     bool
}

func newCoachModel(app *App, tick, deskPoll time.Duration) coachModel {
	bar := progress.New(progress.WithGradient("#fb4934", "#8ec07c"))
	bar.Width = 40

	return coachModel{
		app:      app,
		tick:     tick,
		deskPoll: deskPoll,
		keys:     defaultCoachKeyMap(),
		goalBar:  bar,
		prog:     app.Coach.Progress(time.Now()),
	}
}

func (m coachModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m coachModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m coachModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 20; w > 10 && w < 60 {
			m.goalBar.Width = w
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		ctx := context.Background()
		if m.app.DeskHeight != nil && now.Sub(m.lastDeskPoll) >= m.deskPoll {
			m.lastDeskPoll = now
			pollDesk(ctx, m.app, now)
		}
		_ = m.app.Coach.Tick(ctx, now, sampleActivity(ctx, m.app))
		m.prog = m.app.Coach.Progress(now)
		return m, m.tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m coachModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stand):
		_ = m.app.Coach.ConfirmPosture(ctx, domain.PostureStanding, now)
		m.flash = "Standing confirmed."

	case key.Matches(msg, m.keys.Sit):
		_ = m.app.Coach.ConfirmPosture(ctx, domain.PostureSitting, now)
		m.flash = "Sitting confirmed."

	case key.Matches(msg, m.keys.Pause):
		m.app.Coach.Pause()
		m.flash = "Reminders paused."

	case key.Matches(msg, m.keys.Resume):
		m.app.Coach.Resume()
		m.flash = "Reminders resumed."

	case key.Matches(msg, m.keys.Snooze):
		d := time.Duration(m.app.Coach.Settings().SnoozeSeconds) * time.Second
		if err := m.app.Coach.Snooze(d); err != nil {
			m.flash = err.Error()
		} else {
			m.flash = fmt.Sprintf("Snoozed for %s.", formatter.FormatDuration(int(d.Seconds())))
		}
	}

	m.prog = m.app.Coach.Progress(now)
	return m, nil
}

func (m coachModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(formatter.Header("DeskCoach"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s   %s\n\n",
		formatter.PostureIndicator(m.prog.Posture),
		formatter.StateIndicator(m.prog.State))

	fmt.Fprintf(&b, "Standing today  %s / %s\n",
		formatter.Bold(formatter.FormatDuration(m.prog.StandingSeconds)),
		formatter.FormatDuration(m.prog.GoalSeconds))
	b.WriteString(m.goalBar.ViewAs(m.prog.GoalPct()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitting today   %s\n",
		formatter.Bold(formatter.FormatDuration(m.prog.SittingSeconds)))

	if m.flash != "" {
		b.WriteString("\n" + formatter.Dim(m.flash) + "\n")
	}

	b.WriteString("\n" + m.helpView() + "\n")
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m coachModel) helpView() string {
	bindings := []key.Binding{
		m.keys.Stand, m.keys.Sit, m.keys.Pause, m.keys.Resume, m.keys.Snooze, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s",
			formatter.StyleHeader.Render(kb.Help().Key),
			formatter.Dim(kb.Help().Desc)))
	}
	return strings.Join(parts, "  ")
}
