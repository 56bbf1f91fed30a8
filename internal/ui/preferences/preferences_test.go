package preferences

import (
	"testing"

	"tickwatch/internal/config"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Store.Backend = "sqlite"

	settings := FromConfig(cfg)
	settings.SoundEnabled = false
	settings.Volume = 9
	settings.FrequencyHz = 0
	settings.Autostart = true

	updated := settings.Apply(cfg)
	assert.False(t, updated.Sound.Enabled)
	assert.Equal(t, config.MaxVolume, updated.Sound.Volume)
	assert.Equal(t, cfg.Sound.FrequencyHz, updated.Sound.FrequencyHz)
	assert.True(t, updated.Autostart)
	assert.Equal(t, "sqlite", updated.Store.Backend)
}

func TestWindowSaveReadsWidgets(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, "TickWatch", FromConfig(config.Default()), func(settings Settings) {
		saved = append(saved, settings)
	}, nil)

	prefs.soundCheck.SetChecked(false)
	prefs.frequency.SetText(" 440 ")
	prefs.autostart.SetChecked(true)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, Settings{SoundEnabled: false, Volume: 0, FrequencyHz: 440, Autostart: true}, saved[0])
	assert.Equal(t, saved[0], prefs.Settings())
}

func TestWindowKeepsFrequencyOnBadInput(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var tested Settings
	prefs := New(app, "TickWatch", FromConfig(config.Default()), nil, func(settings Settings) {
		tested = settings
	})

	prefs.frequency.SetText("loud")
	assert.Error(t, prefs.frequency.Validate())
	prefs.handleTest()
	assert.Equal(t, 880, tested.FrequencyHz)
}
