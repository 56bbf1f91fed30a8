package timekeeper

import (
	"time"

	"tickwatch/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	// EventStateChange follows every command that changed mode, status or laps.
	EventStateChange EventType = "state_change"
	// EventProgress is published once per tick while running.
	EventProgress EventType = "progress"
	// EventExpired is published once when a countdown reaches zero.
	EventExpired EventType = "expired"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	Snapshot model.Snapshot
	At       time.Time
}
