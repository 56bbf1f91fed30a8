package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorAccent = lipgloss.Color("214")
	ColorMuted  = lipgloss.Color("8")
	ColorGood   = lipgloss.Color("42")
	ColorError  = lipgloss.Color("9")
)

var (
	modeStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	clockStyle   = lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted)
	runningStyle = lipgloss.NewStyle().Foreground(ColorGood)
	pausedStyle  = lipgloss.NewStyle().Foreground(ColorAccent)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 2).Foreground(ColorAccent)
	formStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 1)
)
