package tui

import (
	"strings"

	"tickwatch/internal/core/model"

	"github.com/charmbracelet/lipgloss"
)

// View renders the timer screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(modeStyle.Render(m.snapshot.Mode.Title()))
	b.WriteString("  ")
	b.WriteString(statusView(m.snapshot.Status))
	b.WriteString("\n")
	b.WriteString(clockStyle.Render(m.snapshot.Text()))
	b.WriteString("\n")

	if m.expired {
		b.WriteString(bannerStyle.Render(model.ExpiredTitle + " - " + model.ExpiredMessage))
		b.WriteString("\n")
	}

	if m.entering {
		b.WriteString(m.formView())
		b.WriteString("\n")
		b.WriteString(m.help.View(formKeys(m.keys)))
		return b.String()
	}

	if laps := lapsView(m.snapshot); laps != "" {
		b.WriteString(laps)
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(m.snapshot.Mode.SwitchLabel() + " with m"))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) formView() string {
	lines := make([]string, 0, len(m.inputs)+2)
	lines = append(lines, modeStyle.Render("Countdown duration"))
	for _, input := range m.inputs {
		lines = append(lines, input.View())
	}
	if m.inputErr != "" {
		lines = append(lines, errorStyle.Render(m.inputErr))
	}
	return formStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func statusView(status model.Status) string {
	switch status {
	case model.StatusRunning:
		return runningStyle.Render("running")
	case model.StatusPaused:
		return pausedStyle.Render("paused")
	default:
		return mutedStyle.Render("idle")
	}
}

func lapsView(snapshot model.Snapshot) string {
	labels := snapshot.LapLabels()
	if len(labels) == 0 {
		return ""
	}
	hidden := 0
	if len(labels) > visibleLaps {
		hidden = len(labels) - visibleLaps
		labels = labels[hidden:]
	}
	var b strings.Builder
	if hidden > 0 {
		b.WriteString(mutedStyle.Render("..."))
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(labels, "\n"))
	return b.String()
}
