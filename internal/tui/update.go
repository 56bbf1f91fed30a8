package tui

import (
	"errors"

	"tickwatch/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles timer events, window resizes and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case eventMsg:
		m.snapshot = msg.Snapshot
		if msg.Type == timekeeper.EventExpired {
			m.expired = true
		}
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if m.entering {
			return m.updateForm(msg)
		}
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.expired = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Start):
		if m.controller.NeedsDuration() {
			return m.openForm()
		}
		if err := m.controller.Dispatch(timekeeper.Command{Type: timekeeper.CmdStart}); errors.Is(err, timekeeper.ErrDurationRequired) {
			return m.openForm()
		}
	case key.Matches(msg, m.keys.Stop):
		m.run(timekeeper.CmdStop)
	case key.Matches(msg, m.keys.Pause):
		m.run(timekeeper.CmdTogglePause)
	case key.Matches(msg, m.keys.Reset):
		m.run(timekeeper.CmdReset)
	case key.Matches(msg, m.keys.Lap):
		m.run(timekeeper.CmdLap)
	case key.Matches(msg, m.keys.Switch):
		m.run(timekeeper.CmdSwitchMode)
	default:
		return m, nil
	}
	m.snapshot = m.controller.Snapshot()
	return m, nil
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.entering = true
	m.inputErr = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("0")
		m.inputs[i].CursorEnd()
	}
	cmd := m.focusField(fieldMinutes)
	return m, cmd
}

func (m *Model) focusField(index int) tea.Cmd {
	m.focus = (index + fieldCount) % fieldCount
	cmds := make([]tea.Cmd, 0, len(m.inputs))
	for i := range m.inputs {
		if i == m.focus {
			cmds = append(cmds, m.inputs[i].Focus())
			continue
		}
		m.inputs[i].Blur()
	}
	return tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		cmd := m.focusField(m.focus + 1)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.focusField(m.focus - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		entry := m.durationEntry()
		if err := m.controller.Dispatch(timekeeper.Command{Type: timekeeper.CmdStart, Duration: &entry}); err != nil {
			m.inputErr = err.Error()
			return m, nil
		}
		m.closeForm()
		m.snapshot = m.controller.Snapshot()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.inputErr = ""
	return m, cmd
}

func (m *Model) closeForm() {
	m.entering = false
	m.inputErr = ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) durationEntry() timekeeper.DurationEntry {
	return timekeeper.DurationEntry{
		Hours:   m.inputs[fieldHours].Value(),
		Minutes: m.inputs[fieldMinutes].Value(),
		Seconds: m.inputs[fieldSeconds].Value(),
	}
}


// run forwards a command that cannot fail.
func (m Model) run(commandType timekeeper.CommandType) {
	_ = m.controller.Dispatch(timekeeper.Command{Type: commandType})
}
