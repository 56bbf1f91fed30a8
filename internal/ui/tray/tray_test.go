package tray

import (
	"testing"

	"tickwatch/internal/core/model"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type fakeTray struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeTray) SetSystemTrayMenu(menu *fyne.Menu)        { app.menus = append(app.menus, menu) }
func (app *fakeTray) SetSystemTrayIcon(icon fyne.Resource)     { app.icons = append(app.icons, icon) }

func iconFor(status model.Status) fyne.Resource {
	return fyne.NewStaticResource(string(status), nil)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Stopwatch 00:01:05", StatusLine(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusRunning, Display: 65}))
	assert.Equal(t, "Countdown 00:04:59 (paused)", StatusLine(model.Snapshot{Mode: model.ModeCountdown, Status: model.StatusPaused, Display: 299}))
}

func TestUpdateRelabelsItems(t *testing.T) {
	app := &fakeTray{}
	manager := New(app, "TickWatch", iconFor, Callbacks{})
	assert.Len(t, app.menus, 1)
	assert.Len(t, app.icons, 1)
	assert.Equal(t, "idle", app.icons[0].Name())
	assert.True(t, manager.pauseItem.Disabled)

	manager.Update(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusRunning, Display: 3})
	assert.Equal(t, "Stop", manager.startItem.Label)
	assert.Equal(t, "Pause", manager.pauseItem.Label)
	assert.False(t, manager.lapItem.Disabled)
	assert.Equal(t, "running", app.icons[len(app.icons)-1].Name())

	manager.Update(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusPaused, Display: 3})
	assert.Equal(t, "Resume", manager.pauseItem.Label)
	assert.Equal(t, "Stopwatch 00:00:03 (paused)", manager.statusItem.Label)

	manager.Update(model.Snapshot{Mode: model.ModeCountdown, Status: model.StatusIdle})
	assert.Equal(t, "Start", manager.startItem.Label)
	assert.True(t, manager.lapItem.Disabled)
	assert.Equal(t, "Switch to Stopwatch", manager.switchItem.Label)
}

func TestIconOnlyChangesWithStatus(t *testing.T) {
	app := &fakeTray{}
	manager := New(app, "TickWatch", iconFor, Callbacks{})

	manager.Update(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusRunning, Display: 1})
	manager.Update(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusRunning, Display: 2})
	assert.Len(t, app.icons, 2)
}

func TestMenuActionsInvokeCallbacks(t *testing.T) {
	var calls []string
	record := func(name string) func() {
		return func() { calls = append(calls, name) }
	}
	manager := New(nil, "TickWatch", nil, Callbacks{
		OnStartStop:   record("start"),
		OnTogglePause: record("pause"),
		OnLap:         record("lap"),
		OnQuit:        record("quit"),
	})

	manager.startItem.Action()
	manager.pauseItem.Action()
	manager.lapItem.Action()
	for _, item := range manager.menu.Items {
		if item.Label == "Quit" {
			item.Action()
		}
		if item.Label == "Reset" {
			item.Action()
		}
	}
	assert.Equal(t, []string{"start", "pause", "lap", "quit"}, calls)
}
