package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flowboard/internal/config"
	"flowboard/internal/day"
	"flowboard/internal/dateutil"
	"flowboard/internal/recur"
	"flowboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   day.Repository
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given repository and config.
func NewApp(repo day.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "flowboard",
		Short: "An Eisenhower-matrix day planner with a time-blocking timeline",
		Long: `Flowboard is a terminal day planner. Tasks live on an Eisenhower
matrix and get dragged onto a per-day timeline as time blocks, with
collision-checked placement, splitting, and merging.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.repo, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.presetCmd())
	a.root.AddCommand(a.recurringCmd())
	a.root.AddCommand(a.captureCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.finalizeCmd())
	a.root.AddCommand(a.auditCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("flowboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// loadDay fetches the record for the given key, creating an empty one when
// the day has no record yet, and materializes due recurring templates onto
// the board. Changed records are saved back before returning.
func (a *App) loadDay(ctx context.Context, date string) (*day.Record, error) {
	rec, err := a.repo.LoadDay(ctx, date)
	if errors.Is(err, day.ErrDayNotFound) {
		rec = day.NewRecord(date)
	} else if err != nil {
		return nil, fmt.Errorf("loading day %s: %w", date, err)
	}

	templates, err := a.repo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recurring templates: %w", err)
	}
	when, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	added := recur.MaterializeMissing(templates, when, rec.Tasks)
	if len(added) > 0 {
		rec.Tasks = append(rec.Tasks, added...)
		if err := a.repo.SaveDay(ctx, rec); err != nil {
			return nil, fmt.Errorf("saving day %s: %w", date, err)
		}
	}

	return rec, nil
}

// resolveDate turns a CLI date argument (relative or absolute, empty for
// today) into a day key.
func resolveDate(arg string) (string, error) {
	t, err := dateutil.ParseRelativeDate(arg, time.Now())
	if err != nil {
		return "", err
	}
	return dateutil.Key(t), nil
}
