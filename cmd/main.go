package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"tickwatch/internal/bootstrap"
	"tickwatch/internal/core/model"
	"tickwatch/internal/core/timekeeper"
	"tickwatch/internal/platform"
	"tickwatch/internal/ui/clock"
	"tickwatch/internal/ui/notice"
	"tickwatch/internal/ui/preferences"
	"tickwatch/internal/ui/tray"
	"tickwatch/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to the settings file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", bootstrap.AppName, version)
		return
	}

	guard, err := platform.AcquireSingleInstance(bootstrap.AppName)
	if err != nil {
		if showErr := platform.RequestShow(bootstrap.AppName); showErr != nil {
			log.Printf("single instance: %v", showErr)
		}
		return
	}

	err = run(guard, *configPath)
	_ = guard.Release()
	if err != nil {
		log.Printf("%s: %v", bootstrap.AppName, err)
		os.Exit(1)
	}
}

func run(guard *platform.InstanceGuard, configPath string) error {
	env, err := bootstrap.Load(platform.NewService(), configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := env.Close(); err != nil {
			env.Logger.Warn("close state store", "err", err)
		}
	}()
	logger := env.Logger
	slog.SetDefault(logger)

	if env.Config.Autostart {
		applyAutostart(env)
	}

	fyneApp := app.NewWithID("com.tickwatch.app")
	fyneApp.SetIcon(resources.MustLogo(resources.LogoIdle))

	noticeWindow := notice.New(fyneApp, notice.Config{
		Opacity: 220,
		Image:   resources.MustSprite(resources.SpriteAlarm),
	})
	keeper := env.NewTimeKeeper(env.Notifier(notice.NewSystemNotifier(fyneApp)))
	clockWindow := clock.New(fyneApp, bootstrap.AppName, keeper, logger)

	prefsWindow := preferences.New(fyneApp, bootstrap.AppName, preferences.FromConfig(env.Config),
		func(settings preferences.Settings) {
			cfg := settings.Apply(env.Config)
			autostartChanged := cfg.Autostart != env.Config.Autostart
			if err := env.SaveConfig(cfg); err != nil {
				logger.Warn("save settings", "path", env.ConfigPath, "err", err)
				dialog.ShowError(err, clockWindow.Window())
				return
			}
			if autostartChanged {
				applyAutostart(env)
			}
		},
		func(settings preferences.Settings) {
			sound := bootstrap.SoundSettings(settings.Apply(env.Config).Sound)
			if err := env.Sound.Play(sound); err != nil {
				logger.Warn("play test tone", "err", err)
			}
		},
	)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, bootstrap.AppName, resources.StatusLogo, tray.Callbacks{
			OnStartStop: func() {
				if keeper.Snapshot().Status == model.StatusIdle {
					clockWindow.Start()
					return
				}
				clockWindow.Dispatch(timekeeper.CmdStop)
			},
			OnTogglePause: func() { clockWindow.Dispatch(timekeeper.CmdTogglePause) },
			OnReset:       func() { clockWindow.Dispatch(timekeeper.CmdReset) },
			OnLap:         func() { clockWindow.Dispatch(timekeeper.CmdLap) },
			OnSwitchMode:  func() { clockWindow.Dispatch(timekeeper.CmdSwitchMode) },
			OnShow:        clockWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.Update(keeper.Snapshot())
		clockWindow.Window().SetCloseIntercept(clockWindow.Window().Hide)
	} else {
		logger.Info("system tray unsupported on this platform")
		clockWindow.Window().SetMaster()
	}
	guard.OnShow(func() {
		fyne.Do(clockWindow.Show)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				handleEvent(ctx, event, clockWindow, noticeWindow, trayManager)
			})
		}
	}()
	go keeper.Run(ctx)

	fyneApp.Lifecycle().SetOnStopped(func() {
		cancel()
		clockWindow.Close()
	})

	clockWindow.Show()
	fyneApp.Run()
	return nil
}

func handleEvent(ctx context.Context, event timekeeper.Event, clockWindow *clock.Window, noticeWindow *notice.Window, trayManager *tray.Manager) {
	switch event.Type {
	case timekeeper.EventExpired:
		clockWindow.Expired(ctx, event.Snapshot)
		noticeWindow.Show(event.Snapshot.Text())
	default:
		clockWindow.Render(event.Snapshot)
	}
	if trayManager != nil {
		trayManager.Update(event.Snapshot)
	}
}

func applyAutostart(env *bootstrap.Environment) {
	execPath, err := os.Executable()
	if err != nil {
		env.Logger.Warn("resolve executable for autostart", "err", err)
		return
	}
	if err := platform.ApplyAutostart(env.Service, env.Config.Autostart, bootstrap.AppName, execPath); err != nil {
		env.Logger.Warn("apply autostart", "enabled", env.Config.Autostart, "err", err)
	}
}
