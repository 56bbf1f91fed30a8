package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"tickwatch/internal/bootstrap"
	"tickwatch/internal/platform"
	"tickwatch/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

const logFileName = "tickwatch-tui.log"

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "settings file (default is <user config dir>/TickWatch/config.yml)")
	flag.Parse()

	if err := runTUI(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(configPath string) error {
	env, err := bootstrap.Load(platform.NewService(), configPath, bootstrap.WithLogFile(logFileName))
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer env.Close()

	keeper := env.NewTimeKeeper(env.Notifier())
	events := keeper.Subscribe(16)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	program := tea.NewProgram(tui.New(keeper, events), tea.WithAltScreen(), tea.WithContext(gctx))

	g.Go(func() error {
		keeper.Run(gctx)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		if err != nil && (strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty")) {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return err
	})

	if err := g.Wait(); err != nil {
		env.Logger.Error("tui exited", "err", err)
		return err
	}
	return nil
}
