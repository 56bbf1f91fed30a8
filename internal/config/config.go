package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// FileName is the settings file created under the app config dir.
	FileName = "config.yml"

	envPrefix = "TICKWATCH"

	// MinVolume and MaxVolume bound the sound volume exponent.
	MinVolume = -6.0
	MaxVolume = 2.0
)

// Config holds application settings shared by the desktop and terminal front-ends.
type Config struct {
	LogLevel  string      `mapstructure:"log-level"`
	Store     StoreConfig `mapstructure:"store"`
	Sound     SoundConfig `mapstructure:"sound"`
	Autostart bool        `mapstructure:"autostart"`
}

// StoreConfig selects where the timer state is persisted.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// SoundConfig tunes the countdown-finished tone.
type SoundConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Volume      float64       `mapstructure:"volume"`
	FrequencyHz int           `mapstructure:"frequency-hz"`
	Pulse       time.Duration `mapstructure:"pulse"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			Backend: "yaml",
		},
		Sound: SoundConfig{
			Enabled:     true,
			Volume:      0,
			FrequencyHz: 880,
			Pulse:       250 * time.Millisecond,
		},
	}
}

// DefaultPath returns the settings file location inside dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads settings from path, layering TICKWATCH_* environment variables
// on top. A missing file is not an error.
func Load(path string) (Config, error) {
	defaults := Default()
	v := newViper(defaults)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return defaults, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("decode config: %w", err)
	}
	cfg.Sound.Volume = clampVolume(cfg.Sound.Volume)
	return cfg, nil
}

// Save writes settings to path, creating its directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("log-level", cfg.LogLevel)
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.path", cfg.Store.Path)
	v.Set("sound.enabled", cfg.Sound.Enabled)
	v.Set("sound.volume", clampVolume(cfg.Sound.Volume))
	v.Set("sound.frequency-hz", cfg.Sound.FrequencyHz)
	v.Set("sound.pulse", cfg.Sound.Pulse.String())
	v.Set("autostart", cfg.Autostart)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// SlogLevel maps the configured log level to slog.
func (cfg Config) SlogLevel() slog.Level {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger writing text records to stderr.
func (cfg Config) NewLogger() *slog.Logger {
	return cfg.NewLoggerTo(os.Stderr)
}

// NewLoggerTo builds a text logger writing to w.
func (cfg Config) NewLoggerTo(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func newViper(defaults Config) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", defaults.LogLevel)
	v.SetDefault("store.backend", defaults.Store.Backend)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("sound.enabled", defaults.Sound.Enabled)
	v.SetDefault("sound.volume", defaults.Sound.Volume)
	v.SetDefault("sound.frequency-hz", defaults.Sound.FrequencyHz)
	v.SetDefault("sound.pulse", defaults.Sound.Pulse)
	v.SetDefault("autostart", defaults.Autostart)
	return v
}

// clampVolume keeps the volume in the range the preferences slider offers.
// Volume is a base-2 exponent: 0 is unchanged, -1 is half as loud.
func clampVolume(volume float64) float64 {
	return min(max(volume, MinVolume), MaxVolume)
}
