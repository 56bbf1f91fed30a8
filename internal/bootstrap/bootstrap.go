// Package bootstrap assembles the pieces both front-ends share: settings,
// logger, state store, notifier chain and the timer itself.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tickwatch/internal/config"
	"tickwatch/internal/core/timekeeper"
	"tickwatch/internal/notify"
	"tickwatch/internal/platform"
	"tickwatch/internal/storage"
)

// AppName names the config directory, the single-instance lock and windows.
const AppName = "TickWatch"

// Environment is the loaded application context.
type Environment struct {
	Dir        string
	ConfigPath string
	Config     config.Config
	Logger     *slog.Logger
	Store      storage.Store
	Service    platform.Service
	Sound      *notify.Sound

	logFile *os.File
}

// Option adjusts how Load builds the environment.
type Option func(*options)

type options struct {
	logFile string
}

// WithLogFile sends log records to name inside the app dir instead of
// stderr. The file is opened before anything else logs.
func WithLogFile(name string) Option {
	return func(opts *options) {
		opts.logFile = name
	}
}

// Load reads settings from configPath (or the default location inside the
// app config dir) and opens the state store. A store that cannot be opened
// leaves the timer in memory-only mode.
func Load(service platform.Service, configPath string, opts ...Option) (*Environment, error) {
	var loadOptions options
	for _, opt := range opts {
		opt(&loadOptions)
	}

	dir, err := platform.AppDir(service, AppName)
	if err != nil {
		return nil, fmt.Errorf("resolve app dir: %w", err)
	}
	if configPath == "" {
		configPath = config.DefaultPath(dir)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	env := &Environment{
		Dir:        dir,
		ConfigPath: configPath,
		Config:     cfg,
		Logger:     cfg.NewLogger(),
		Service:    service,
		Sound:      notify.NewSound(SoundSettings(cfg.Sound)),
	}
	if loadOptions.logFile != "" {
		file, err := os.OpenFile(filepath.Join(dir, loadOptions.logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		env.logFile = file
		env.Logger = cfg.NewLoggerTo(file)
	}
	logger := env.Logger

	store, err := storage.Open(cfg.Store.Backend, cfg.Store.Path, dir)
	if err != nil {
		logger.Warn("open state store, keeping state in memory", "backend", cfg.Store.Backend, "err", err)
	} else {
		env.Store = store
	}

	logger.Debug("environment loaded", "dir", dir, "config", configPath, "backend", cfg.Store.Backend)
	return env, nil
}

// Notifier chains the sound, the log line and any front-end specific
// notifiers.
func (env *Environment) Notifier(extra ...notify.Notifier) notify.Notifier {
	notifiers := append([]notify.Notifier{env.Sound, notify.Log{Logger: env.Logger}}, extra...)
	return notify.NewChain(env.Logger, notifiers...)
}

// NewTimeKeeper restores the timer from the store.
func (env *Environment) NewTimeKeeper(notifier notify.Notifier) *timekeeper.TimeKeeper {
	var store timekeeper.StateStore
	if env.Store != nil {
		store = env.Store
	}
	return timekeeper.New(store, timekeeper.Config{
		TickInterval: time.Second,
		Notifier:     notifier,
		Logger:       env.Logger,
	})
}

// SaveConfig persists cfg and applies the sound settings immediately.
func (env *Environment) SaveConfig(cfg config.Config) error {
	if err := config.Save(env.ConfigPath, cfg); err != nil {
		return err
	}
	env.Config = cfg
	env.Sound.SetConfig(SoundSettings(cfg.Sound))
	return nil
}

// Close releases the state store and the log file.
func (env *Environment) Close() error {
	var errs []error
	if env.Store != nil {
		errs = append(errs, env.Store.Close())
	}
	if env.logFile != nil {
		errs = append(errs, env.logFile.Close())
	}
	return errors.Join(errs...)
}

// SoundSettings converts the configured sound block for the notifier.
func SoundSettings(sound config.SoundConfig) notify.SoundConfig {
	return notify.SoundConfig{
		Enabled:     sound.Enabled,
		Volume:      sound.Volume,
		FrequencyHz: sound.FrequencyHz,
		Pulse:       sound.Pulse,
	}
}
