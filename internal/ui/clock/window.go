// Package clock renders the main timer window: the time display, the
// command buttons, the lap list and the countdown duration form.
package clock

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"slices"

	"tickwatch/internal/core/model"
	"tickwatch/internal/core/timekeeper"
	"tickwatch/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// Controller is the timer surface the window drives.
type Controller interface {
	Snapshot() model.Snapshot
	NeedsDuration() bool
	Dispatch(command timekeeper.Command) error
}

// Window is the main timer window.
type Window struct {
	window     fyne.Window
	controller Controller
	logger     *slog.Logger

	timeLabel   *canvas.Text
	modeLabel   *widget.Label
	statusLabel *widget.Label
	startButton *widget.Button
	stopButton  *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button
	lapButton   *widget.Button
	modeButton  *widget.Button
	lapList     *widget.List

	laps    []string
	blinker *animation.Engine

	durationForm *dialog.FormDialog
	hoursEntry   *widget.Entry
	minutesEntry *widget.Entry
	secondsEntry *widget.Entry

	showError func(error, fyne.Window)
}

var timeColor = color.NRGBA{R: 232, G: 190, B: 66, A: 255}

// New builds the window around controller. It is not shown yet.
func New(app fyne.App, title string, controller Controller, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}
	clock := &Window{
		window:     app.NewWindow(title),
		controller: controller,
		logger:     logger,
		showError:  dialog.ShowError,
	}

	clock.timeLabel = canvas.NewText(model.FormatClock(0), timeColor)
	clock.timeLabel.Alignment = fyne.TextAlignCenter
	clock.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clock.timeLabel.TextSize = 48

	clock.modeLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	clock.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	clock.startButton = widget.NewButton("Start", clock.Start)
	clock.stopButton = widget.NewButton("Stop", clock.action(timekeeper.CmdStop))
	clock.pauseButton = widget.NewButton("Pause", clock.action(timekeeper.CmdTogglePause))
	clock.resetButton = widget.NewButton("Reset", clock.action(timekeeper.CmdReset))
	clock.lapButton = widget.NewButton("Lap", clock.action(timekeeper.CmdLap))
	clock.modeButton = widget.NewButton(model.ModeStopwatch.SwitchLabel(), clock.action(timekeeper.CmdSwitchMode))

	clock.lapList = widget.NewList(
		func() int { return len(clock.laps) },
		func() fyne.CanvasObject { return widget.NewLabel("Lap 00: 00:00:00") },
		func(id widget.ListItemID, object fyne.CanvasObject) {
			if id < len(clock.laps) {
				object.(*widget.Label).SetText(clock.laps[id])
			}
		},
	)

	clock.blinker = animation.New(func(visible bool) {
		fyne.Do(func() { clock.setTimeVisible(visible) })
	})

	buttons := container.NewGridWithColumns(3,
		clock.startButton, clock.stopButton, clock.pauseButton,
		clock.resetButton, clock.lapButton, clock.modeButton,
	)
	header := container.NewVBox(
		clock.modeLabel,
		clock.timeLabel,
		clock.statusLabel,
		buttons,
		widget.NewSeparator(),
	)
	clock.window.SetContent(container.NewBorder(header, nil, nil, nil, clock.lapList))
	clock.window.Resize(fyne.NewSize(360, 420))

	clock.Render(controller.Snapshot())
	return clock
}

// Window exposes the underlying fyne window.
func (clock *Window) Window() fyne.Window {
	return clock.window
}

// Show displays the window.
func (clock *Window) Show() {
	clock.window.Show()
	clock.window.RequestFocus()
}

// Render updates every widget from snapshot. It must run on the UI thread.
func (clock *Window) Render(snapshot model.Snapshot) {
	clock.timeLabel.Text = snapshot.Text()
	clock.timeLabel.Refresh()
	clock.modeLabel.SetText(snapshot.Mode.Title())
	clock.statusLabel.SetText(statusText(snapshot.Status))

	running := snapshot.Status != model.StatusIdle
	setEnabled(clock.startButton, !running)
	setEnabled(clock.stopButton, running)
	setEnabled(clock.pauseButton, running)
	setEnabled(clock.lapButton, running && snapshot.Mode == model.ModeStopwatch)
	if snapshot.Status == model.StatusPaused {
		clock.pauseButton.SetText("Resume")
	} else {
		clock.pauseButton.SetText("Pause")
	}
	clock.modeButton.SetText(snapshot.Mode.SwitchLabel())

	laps := snapshot.LapLabels()
	if !slices.Equal(laps, clock.laps) {
		clock.laps = laps
		clock.lapList.Refresh()
		if len(laps) > 0 {
			clock.lapList.ScrollToBottom()
		}
	}
}

// Expired plays the expiry blink on the time label.
func (clock *Window) Expired(ctx context.Context, snapshot model.Snapshot) {
	clock.Render(snapshot)
	clock.blinker.Blink(ctx, animation.ExpirySpec())
}

// Close stops background animation.
func (clock *Window) Close() {
	clock.blinker.Stop()
}

func (clock *Window) action(commandType timekeeper.CommandType) func() {
	return func() {
		clock.Dispatch(commandType)
	}
}

// Dispatch forwards a command without arguments and redraws.
func (clock *Window) Dispatch(commandType timekeeper.CommandType) {
	if err := clock.controller.Dispatch(timekeeper.Command{Type: commandType}); err != nil {
		clock.logger.Warn("command failed", "command", commandType.String(), "err", err)
	}
	clock.Render(clock.controller.Snapshot())
}

// Start starts the timer, asking for a duration first when a countdown
// has none.
func (clock *Window) Start() {
	if clock.controller.NeedsDuration() {
		clock.showDurationForm()
		return
	}
	err := clock.controller.Dispatch(timekeeper.Command{Type: timekeeper.CmdStart})
	switch {
	case errors.Is(err, timekeeper.ErrDurationRequired):
		clock.showDurationForm()
		return
	case err != nil:
		clock.logger.Warn("start failed", "err", err)
		clock.showError(err, clock.window)
		return
	}
	clock.Render(clock.controller.Snapshot())
}

func (clock *Window) showDurationForm() {
	clock.Show()
	clock.hoursEntry = numberEntry()
	clock.minutesEntry = numberEntry()
	clock.secondsEntry = numberEntry()

	items := []*widget.FormItem{
		widget.NewFormItem("Hours", clock.hoursEntry),
		widget.NewFormItem("Minutes", clock.minutesEntry),
		widget.NewFormItem("Seconds", clock.secondsEntry),
	}
	clock.durationForm = dialog.NewForm("Countdown duration", "Start", "Cancel", items, func(confirmed bool) {
		if confirmed {
			clock.submitDuration(clock.durationEntry())
		}
	}, clock.window)
	clock.durationForm.Show()
}

func (clock *Window) durationEntry() timekeeper.DurationEntry {
	return timekeeper.DurationEntry{
		Hours:   clock.hoursEntry.Text,
		Minutes: clock.minutesEntry.Text,
		Seconds: clock.secondsEntry.Text,
	}
}

func (clock *Window) submitDuration(entry timekeeper.DurationEntry) {
	if err := clock.controller.Dispatch(timekeeper.Command{Type: timekeeper.CmdStart, Duration: &entry}); err != nil {
		clock.logger.Debug("duration rejected", "err", err)
		clock.showError(err, clock.window)
		return
	}
	clock.Render(clock.controller.Snapshot())
}

func (clock *Window) setTimeVisible(visible bool) {
	if visible {
		clock.timeLabel.Color = timeColor
	} else {
		clock.timeLabel.Color = color.Transparent
	}
	clock.timeLabel.Refresh()
}

func numberEntry() *widget.Entry {
	entry := widget.NewEntry()
	entry.SetText("0")
	return entry
}

func statusText(status model.Status) string {
	switch status {
	case model.StatusRunning:
		return "Running"
	case model.StatusPaused:
		return "Paused"
	default:
		return "Ready"
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}

