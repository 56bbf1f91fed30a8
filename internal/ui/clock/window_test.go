package clock

import (
	"testing"
	"time"

	"tickwatch/internal/core/model"
	"tickwatch/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frozenClock struct {
	now time.Time
}

func (clock *frozenClock) Now() time.Time {
	return clock.now
}

type harness struct {
	keeper *timekeeper.TimeKeeper
	clock  *Window
	errors []error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	keeper := timekeeper.New(nil, timekeeper.Config{
		TickInterval: time.Second,
		Clock:        &frozenClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)},
	})
	h := &harness{keeper: keeper}
	h.clock = New(app, "TickWatch", keeper, nil)
	h.clock.showError = func(err error, _ fyne.Window) {
		h.errors = append(h.errors, err)
	}
	t.Cleanup(h.clock.Close)
	return h
}

func TestInitialRender(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, "00:00:00", h.clock.timeLabel.Text)
	assert.Equal(t, "Stopwatch", h.clock.modeLabel.Text)
	assert.Equal(t, "Switch to Countdown", h.clock.modeButton.Text)
	assert.False(t, h.clock.startButton.Disabled())
	assert.True(t, h.clock.stopButton.Disabled())
	assert.True(t, h.clock.lapButton.Disabled())
}

func TestStartPauseAndLapButtons(t *testing.T) {
	h := newHarness(t)

	test.Tap(h.clock.startButton)
	assert.Equal(t, model.StatusRunning, h.keeper.Snapshot().Status)
	assert.True(t, h.clock.startButton.Disabled())
	assert.False(t, h.clock.lapButton.Disabled())

	test.Tap(h.clock.lapButton)
	assert.Equal(t, []string{"Lap 1: 00:00:00"}, h.clock.laps)

	test.Tap(h.clock.pauseButton)
	assert.Equal(t, "Resume", h.clock.pauseButton.Text)
	assert.Equal(t, "Paused", h.clock.statusLabel.Text)

	test.Tap(h.clock.resetButton)
	assert.Empty(t, h.clock.laps)
	assert.Equal(t, "Ready", h.clock.statusLabel.Text)
}

func TestCountdownStartAsksForDuration(t *testing.T) {
	h := newHarness(t)

	test.Tap(h.clock.modeButton)
	assert.Equal(t, "Countdown", h.clock.modeLabel.Text)
	assert.Equal(t, "Switch to Stopwatch", h.clock.modeButton.Text)

	test.Tap(h.clock.startButton)
	require.NotNil(t, h.clock.durationForm)
	assert.Equal(t, model.StatusIdle, h.keeper.Snapshot().Status)

	h.clock.minutesEntry.SetText("abc")
	h.clock.submitDuration(h.clock.durationEntry())
	require.Len(t, h.errors, 1)
	assert.EqualError(t, h.errors[0], "enter valid numbers")
	assert.Equal(t, model.StatusIdle, h.keeper.Snapshot().Status)

	h.clock.minutesEntry.SetText("1")
	h.clock.secondsEntry.SetText("5")
	h.clock.submitDuration(h.clock.durationEntry())
	assert.Len(t, h.errors, 1)
	assert.Equal(t, model.StatusRunning, h.keeper.Snapshot().Status)
	assert.Equal(t, "00:01:05", h.clock.timeLabel.Text)
}

func TestSetTimeVisible(t *testing.T) {
	h := newHarness(t)

	h.clock.setTimeVisible(false)
	assert.NotEqual(t, timeColor, h.clock.timeLabel.Color)
	h.clock.setTimeVisible(true)
	assert.Equal(t, timeColor, h.clock.timeLabel.Color)
}

type recordingController struct {
	needsDuration bool
	commands      []timekeeper.Command
}

func (controller *recordingController) Snapshot() model.Snapshot {
	return model.Snapshot{Mode: model.ModeCountdown, Status: model.StatusRunning}
}

func (controller *recordingController) NeedsDuration() bool {
	return controller.needsDuration
}

func (controller *recordingController) Dispatch(command timekeeper.Command) error {
	controller.commands = append(controller.commands, command)
	return nil
}

func TestButtonsGoThroughDispatch(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	controller := &recordingController{}
	clock := New(app, "TickWatch", controller, nil)
	t.Cleanup(clock.Close)

	test.Tap(clock.stopButton)
	test.Tap(clock.pauseButton)
	test.Tap(clock.resetButton)
	test.Tap(clock.modeButton)

	var types []timekeeper.CommandType
	for _, command := range controller.commands {
		types = append(types, command.Type)
	}
	assert.Equal(t, []timekeeper.CommandType{
		timekeeper.CmdStop, timekeeper.CmdTogglePause, timekeeper.CmdReset, timekeeper.CmdSwitchMode,
	}, types)
}

func TestStartShowsFormWhenDurationNeeded(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	controller := &recordingController{needsDuration: true}
	clock := New(app, "TickWatch", controller, nil)
	t.Cleanup(clock.Close)

	clock.Start()
	require.NotNil(t, clock.durationForm)
	assert.Empty(t, controller.commands)

	clock.secondsEntry.SetText("30")
	clock.submitDuration(clock.durationEntry())
	require.Len(t, controller.commands, 1)
	assert.Equal(t, timekeeper.CmdStart, controller.commands[0].Type)
	require.NotNil(t, controller.commands[0].Duration)
	assert.Equal(t, "30", controller.commands[0].Duration.Seconds)
}
