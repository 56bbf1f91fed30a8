package tray

import (
	"fmt"

	"tickwatch/internal/core/model"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the manager drives.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStartStop   func()
	OnTogglePause func()
	OnReset       func()
	OnLap         func()
	OnSwitchMode  func()
	OnShow        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        App
	menuTitle  string
	icon       func(model.Status) fyne.Resource
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	lapItem    *fyne.MenuItem
	switchItem *fyne.MenuItem
	menu       *fyne.Menu
	status     model.Status
}

// New creates a tray manager. icon may be nil.
func New(app App, menuTitle string, icon func(model.Status) fyne.Resource, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		menuTitle: menuTitle,
		icon:      icon,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Stopwatch 00:00:00", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(&manager.callbacks.OnStartStop))
	manager.pauseItem = fyne.NewMenuItem("Pause", invoke(&manager.callbacks.OnTogglePause))
	manager.lapItem = fyne.NewMenuItem("Lap", invoke(&manager.callbacks.OnLap))
	manager.switchItem = fyne.NewMenuItem(model.ModeStopwatch.SwitchLabel(), invoke(&manager.callbacks.OnSwitchMode))

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		fyne.NewMenuItem("Reset", invoke(&manager.callbacks.OnReset)),
		manager.lapItem,
		manager.switchItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show window", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	manager.Update(model.Snapshot{Mode: model.ModeStopwatch, Status: model.StatusIdle})

	return manager
}

// Update reflects a timer snapshot in the menu and icon.
func (manager *Manager) Update(snapshot model.Snapshot) {
	manager.statusItem.Label = StatusLine(snapshot)

	running := snapshot.Status != model.StatusIdle
	if running {
		manager.startItem.Label = "Stop"
	} else {
		manager.startItem.Label = "Start"
	}
	if snapshot.Status == model.StatusPaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.pauseItem.Disabled = !running
	manager.lapItem.Disabled = !running || snapshot.Mode != model.ModeStopwatch
	manager.switchItem.Label = snapshot.Mode.SwitchLabel()

	statusChanged := snapshot.Status != manager.status
	manager.status = snapshot.Status
	manager.refreshMenu()
	if statusChanged {
		manager.applyIcon()
	}
}

// StatusLine renders the tray status entry, e.g. "Countdown 00:04:59 (paused)".
func StatusLine(snapshot model.Snapshot) string {
	status := fmt.Sprintf("%s %s", snapshot.Mode.Title(), snapshot.Text())
	if snapshot.Status == model.StatusPaused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	return status
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func (manager *Manager) applyIcon() {
	if manager.app != nil && manager.icon != nil {
		manager.app.SetSystemTrayIcon(manager.icon(manager.status))
	}
}

func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
