// Package main is the entry point for taskdeck, a CSV-backed task
// tracker. Run with no arguments for the TUI; subcommands cover the
// non-interactive paths.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskdeck/internal/app"
	"github.com/riordanpawley/taskdeck/internal/cli"
	"github.com/riordanpawley/taskdeck/internal/config"
	"github.com/riordanpawley/taskdeck/internal/services/csvfile"
	"github.com/riordanpawley/taskdeck/internal/tracker"
)

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		runTUI(cfg)
		return
	}

	logger := newLogger(cfg, os.Stderr)
	switch os.Args[1] {
	case "list":
		hideCompleted := true
		if len(os.Args) > 2 && os.Args[2] == "-a" {
			hideCompleted = false
		}
		runCommand(cfg, logger, func(deps *cli.Dependencies) error {
			return cli.ListCommand(deps, hideCompleted)
		})
	case "add":
		name := ""
		if len(os.Args) > 2 {
			name = os.Args[2]
		}
		runCommand(cfg, logger, func(deps *cli.Dependencies) error {
			return cli.AddCommand(deps, name)
		})
	case "help", "-h", "--help":
		cli.PrintUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		cli.PrintUsage()
		os.Exit(1)
	}
}

func runCommand(cfg *config.Config, logger *slog.Logger, run func(*cli.Dependencies) error) {
	deps, err := cli.NewDependencies(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg *config.Config) {
	// The TUI owns the terminal, so logs go to the configured file or
	// nowhere at all.
	logOut := io.Writer(io.Discard)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(cfg, logOut)

	gateway, err := csvfile.New(cfg.Persistence.Policy, cfg.Persistence.File, cfg.Persistence.ArchiveDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tr := tracker.New(gateway, logger)
	tr.OnChange(func() {
		logger.Debug("store changed", "tasks", tr.Len(), "dirty", tr.Dirty())
	})
	tr.SetHideCompleted(cfg.UI.HideCompleted)

	// Load failures are not fatal: the session starts on an empty
	// store with the failure surfaced as a toast.
	status, loadErr := tr.Load()

	model := app.New(tr, logger, status, loadErr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}
