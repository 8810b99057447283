// Package cli implements the non-interactive commands: list, add,
// and usage. The TUI path lives in internal/app.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/riordanpawley/taskdeck/internal/config"
	"github.com/riordanpawley/taskdeck/internal/domain"
	"github.com/riordanpawley/taskdeck/internal/services/csvfile"
	"github.com/riordanpawley/taskdeck/internal/store"
	"github.com/riordanpawley/taskdeck/internal/tracker"
)

// Dependencies holds the services needed for CLI commands.
type Dependencies struct {
	Config  *config.Config
	Tracker *tracker.Tracker
	Logger  *slog.Logger
}

// NewDependencies wires a tracker from the configured persistence
// policy.
func NewDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	gateway, err := csvfile.New(cfg.Persistence.Policy, cfg.Persistence.File, cfg.Persistence.ArchiveDir, logger)
	if err != nil {
		return nil, err
	}
	return &Dependencies{
		Config:  cfg,
		Tracker: tracker.New(gateway, logger),
		Logger:  logger,
	}, nil
}

// ListCommand prints the task table to stdout.
func ListCommand(deps *Dependencies, hideCompleted bool) error {
	status, err := deps.Tracker.Load()
	if err != nil {
		return fmt.Errorf("list: %s", status)
	}
	for _, w := range deps.Tracker.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	deps.Tracker.SetHideCompleted(hideCompleted)
	tasks := deps.Tracker.View()
	if len(tasks) == 0 {
		fmt.Println("No tasks")
		return nil
	}

	today := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTASK\tSTATUS\tASSIGNED\tDUE\tPRIORITY\tHEAT")
	fmt.Fprintln(w, "--\t----\t------\t--------\t---\t--------\t----")

	for _, t := range tasks {
		name := t.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, name, t.Status, t.AssignedUser, t.DueDateString(), t.Priority,
			heatLabel(domain.Heat(t, today)))
	}
	w.Flush()

	fmt.Printf("\n%d of %d tasks shown\n", len(tasks), deps.Tracker.Len())
	return nil
}

// AddCommand creates a task, optionally named, and saves immediately.
func AddCommand(deps *Dependencies, name string) error {
	status, err := deps.Tracker.Load()
	if err != nil {
		return fmt.Errorf("add: %s", status)
	}

	task, _ := deps.Tracker.Add()
	if name != "" {
		if msg, err := deps.Tracker.FieldEdit(task.ID, store.FieldName, name); err != nil {
			return fmt.Errorf("add: %s", msg)
		}
	}

	saveStatus, err := deps.Tracker.Save()
	if err != nil {
		return fmt.Errorf("add: %s", saveStatus)
	}

	fmt.Printf("Added task %s", task.ID)
	if name != "" {
		fmt.Printf(" - %s", name)
	}
	fmt.Printf("\n%s\n", saveStatus)
	return nil
}

func heatLabel(h domain.HeatColor) string {
	switch h {
	case domain.HeatBlue:
		return "done"
	case domain.HeatRed:
		return "overdue"
	case domain.HeatYellow:
		return "due today"
	case domain.HeatOrange:
		return "urgent"
	case domain.HeatGreen:
		return "active"
	default:
		return "-"
	}
}

// PrintUsage prints CLI usage information.
func PrintUsage() {
	usage := `Usage: taskdeck [command] [arguments]

Commands:
  (no command)         Start the taskdeck TUI
  list [-a]            Print the task table (-a includes completed)
  add [name]           Add a task and save
  help                 Show this help message

Examples:
  taskdeck                    # Start TUI
  taskdeck list               # Show open tasks
  taskdeck list -a            # Show all tasks
  taskdeck add "Ship v2"      # Add a named task

Configuration is read from .taskdeck.toml in the working directory.
`
	fmt.Print(usage)
}
