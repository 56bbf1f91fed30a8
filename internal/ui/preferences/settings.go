package preferences

import (
	"tickwatch/internal/config"
)

// Settings defines the preferences the window edits.
type Settings struct {
	SoundEnabled bool
	Volume       float64
	FrequencyHz  int
	Autostart    bool
}

// FromConfig extracts the editable settings.
func FromConfig(cfg config.Config) Settings {
	return Settings{
		SoundEnabled: cfg.Sound.Enabled,
		Volume:       cfg.Sound.Volume,
		FrequencyHz:  cfg.Sound.FrequencyHz,
		Autostart:    cfg.Autostart,
	}
}

// Apply copies the settings into cfg, leaving other fields untouched.
func (settings Settings) Apply(cfg config.Config) config.Config {
	cfg.Sound.Enabled = settings.SoundEnabled
	cfg.Sound.Volume = min(max(settings.Volume, config.MinVolume), config.MaxVolume)
	if settings.FrequencyHz > 0 {
		cfg.Sound.FrequencyHz = settings.FrequencyHz
	}
	cfg.Autostart = settings.Autostart
	return cfg
}
