package preferences

import (
	"errors"
	"strconv"
	"strings"

	"tickwatch/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var errInvalidFrequency = errors.New("enter a positive number of hertz")

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	onTest     func(Settings)
	soundCheck *widget.Check
	volume     *widget.Slider
	frequency  *widget.Entry
	autostart  *widget.Check
}

// New creates a preferences window. onTest, when set, plays the tone with
// the values currently on screen.
func New(app fyne.App, title string, settings Settings, onSave func(Settings), onTest func(Settings)) *Window {
	window := app.NewWindow(title + " Preferences")

	soundCheck := widget.NewCheck("Play a sound when the countdown finishes", nil)

	volume := widget.NewSlider(config.MinVolume, config.MaxVolume)
	volume.Step = 0.5

	frequency := widget.NewEntry()
	frequency.Validator = func(value string) error {
		if _, ok := parsePositiveInt(value); !ok {
			return errInvalidFrequency
		}
		return nil
	}

	autostart := widget.NewCheck("Launch at login", nil)

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		onTest:     onTest,
		soundCheck: soundCheck,
		volume:     volume,
		frequency:  frequency,
		autostart:  autostart,
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		soundCheck,
		widget.NewLabel("Volume"),
		volume,
		container.NewBorder(nil, nil, widget.NewLabel("Tone"), widget.NewLabel("Hz"), frequency),
		widget.NewButton("Play test tone", prefs.handleTest),
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		autostart,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.SetCloseIntercept(window.Hide)
	window.Resize(fyne.NewSize(380, 320))

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(settings.Volume)
	prefs.frequency.SetText(strconv.Itoa(settings.FrequencyHz))
	prefs.autostart.SetChecked(settings.Autostart)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) current() Settings {
	settings := prefs.settings
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.Volume = prefs.volume.Value
	if hz, ok := parsePositiveInt(prefs.frequency.Text); ok {
		settings.FrequencyHz = hz
	}
	settings.Autostart = prefs.autostart.Checked
	return settings
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.current()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) handleTest() {
	if prefs.onTest != nil {
		prefs.onTest(prefs.current())
	}
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
