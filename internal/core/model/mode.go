package model

import (
	"fmt"
	"strings"
)

// Mode selects how elapsed time is interpreted.
type Mode string

const (
	ModeStopwatch Mode = "stopwatch"
	ModeCountdown Mode = "countdown"
)

// ParseMode converts a stored tag into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeStopwatch:
		return ModeStopwatch, nil
	case ModeCountdown:
		return ModeCountdown, nil
	default:
		return "", fmt.Errorf("unknown mode %q", value)
	}
}

// Valid reports whether mode is one of the known modes.
func (mode Mode) Valid() bool {
	return mode == ModeStopwatch || mode == ModeCountdown
}

// Toggle returns the other mode.
func (mode Mode) Toggle() Mode {
	if mode == ModeCountdown {
		return ModeStopwatch
	}
	return ModeCountdown
}

// Title returns a display name for the mode.
func (mode Mode) Title() string {
	if mode == ModeCountdown {
		return "Countdown"
	}
	return "Stopwatch"
}

// SwitchLabel is the caption of the mode-toggle control.
func (mode Mode) SwitchLabel() string {
	return "Switch to " + mode.Toggle().Title()
}
