package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := DefaultPath(filepath.Join(t.TempDir(), "TickWatch"))
	want := Config{
		LogLevel: "debug",
		Store:    StoreConfig{Backend: "sqlite", Path: "/tmp/tickwatch/state.db"},
		Sound: SoundConfig{
			Enabled:     false,
			Volume:      -1.5,
			FrequencyHz: 660,
			Pulse:       400 * time.Millisecond,
		},
		Autostart: true,
	}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: yaml\n"), 0o644))
	t.Setenv("TICKWATCH_STORE_BACKEND", "sqlite")
	t.Setenv("TICKWATCH_SOUND_FREQUENCY_HZ", "440")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, 440, cfg.Sound.FrequencyHz)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("sound: [unterminated\n"), 0o644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadClampsVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("sound:\n  volume: 40\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Sound.Volume)
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "chatty"}.SlogLevel())
}
