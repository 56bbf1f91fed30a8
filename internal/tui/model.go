// Package tui is the terminal front-end of the timer, built on bubbletea.
package tui

import (
	"tickwatch/internal/core/model"
	"tickwatch/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Controller is the timer surface the terminal view drives.
type Controller interface {
	Snapshot() model.Snapshot
	NeedsDuration() bool
	Dispatch(command timekeeper.Command) error
}

// visibleLaps caps how many of the latest laps are listed.
const visibleLaps = 8

const (
	fieldHours = iota
	fieldMinutes
	fieldSeconds
	fieldCount
)

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

// Model is the bubbletea model of the timer screen.
type Model struct {
	controller Controller
	events     <-chan timekeeper.Event
	keys       KeyMap
	help       help.Model

	snapshot model.Snapshot
	expired  bool

	entering bool
	inputs   []textinput.Model
	focus    int
	inputErr string

	width int
}

// New creates the model. events is the timer subscription; the program
// quits once it is closed.
func New(controller Controller, events <-chan timekeeper.Event) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i, prompt := range []string{"Hours   ", "Minutes ", "Seconds "} {
		input := textinput.New()
		input.Prompt = prompt
		input.CharLimit = 5
		input.Width = 6
		inputs[i] = input
	}

	return Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		snapshot:   controller.Snapshot(),
		inputs:     inputs,
	}
}

// Init starts listening for timer events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

// Expired reports whether the "Time's up" banner is showing.
func (m Model) Expired() bool {
	return m.expired
}

// Entering reports whether the duration form is open.
func (m Model) Entering() bool {
	return m.entering
}
