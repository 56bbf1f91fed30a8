package model

import (
	"fmt"
	"time"
)

// Texts announcing a finished countdown.
const (
	ExpiredTitle   = "Time's up"
	ExpiredMessage = "The countdown has finished!"
)

// Status is the observable state of the timer.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// SavedState is the part of the timer that survives a restart.
type SavedState struct {
	Mode      Mode
	Remaining int64
}

// DefaultSavedState is used when nothing was stored yet.
func DefaultSavedState() SavedState {
	return SavedState{Mode: ModeStopwatch}
}

// Validate rejects states that cannot come from a healthy store.
func (state SavedState) Validate() error {
	if !state.Mode.Valid() {
		return fmt.Errorf("unknown mode %q", state.Mode)
	}
	if state.Remaining < 0 {
		return fmt.Errorf("negative remaining duration %d", state.Remaining)
	}
	return nil
}

// Lap is a recorded stopwatch split.
type Lap struct {
	Number  int
	Elapsed int64
}

// Label renders the lap the way the lap list shows it.
func (lap Lap) Label() string {
	return fmt.Sprintf("Lap %d: %s", lap.Number, FormatClock(lap.Elapsed))
}

// Snapshot is a read-only copy of the timer for views.
type Snapshot struct {
	Mode      Mode
	Status    Status
	Display   int64
	Remaining int64
	Laps      []Lap
	At        time.Time
}

// Text returns the display value as HH:MM:SS.
func (snapshot Snapshot) Text() string {
	return FormatClock(snapshot.Display)
}

// LapLabels returns the lap list in recording order.
func (snapshot Snapshot) LapLabels() []string {
	labels := make([]string, 0, len(snapshot.Laps))
	for _, lap := range snapshot.Laps {
		labels = append(labels, lap.Label())
	}
	return labels
}

// FormatClock renders seconds as zero-padded HH:MM:SS.
// Hours are not clamped and may exceed two digits.
func FormatClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
