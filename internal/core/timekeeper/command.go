package timekeeper

import "fmt"

// CommandType enumerates the user commands a view can forward.
type CommandType int

const (
	CmdStart CommandType = iota
	CmdStop
	CmdTogglePause
	CmdReset
	CmdLap
	CmdSwitchMode
)

// String returns a short command name for logs.
func (commandType CommandType) String() string {
	switch commandType {
	case CmdStart:
		return "start"
	case CmdStop:
		return "stop"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdReset:
		return "reset"
	case CmdLap:
		return "lap"
	case CmdSwitchMode:
		return "switch_mode"
	default:
		return "unknown"
	}
}

// Command is a single view action. Duration is only read by CmdStart and
// carries the entry typed into the countdown duration form.
type Command struct {
	Type     CommandType
	Duration *DurationEntry
}

// Dispatch applies a command. Only CmdStart can fail: with
// ErrDurationRequired when a countdown needs a duration, or with
// ErrInvalidDuration when the supplied entry does not parse.
func (keeper *TimeKeeper) Dispatch(command Command) error {
	keeper.logger.Debug("dispatch command", "command", command.Type.String())

	switch command.Type {
	case CmdStart:
		if command.Duration != nil {
			return keeper.StartWithDuration(*command.Duration)
		}
		return keeper.Start()
	case CmdStop:
		keeper.Stop()
	case CmdTogglePause:
		keeper.TogglePause()
	case CmdReset:
		keeper.Reset()
	case CmdLap:
		keeper.Lap()
	case CmdSwitchMode:
		keeper.SwitchMode()
	default:
		return fmt.Errorf("dispatch: unknown command %d", command.Type)
	}
	return nil
}
