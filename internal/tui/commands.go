package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"flowboard/internal/day"
	"flowboard/internal/dateutil"
	"flowboard/internal/recur"
	"flowboard/internal/task"
)

// dayLoadedMsg carries a freshly loaded day record plus the preset list.
type dayLoadedMsg struct {
	Date    string
	Rec     *day.Record
	Presets []*task.Preset
}

// errMsg carries a failed command.
type errMsg struct {
	Err error
}

// clockTickMsg advances the now marker on the timeline.
type clockTickMsg time.Time

// statusTimeoutMsg clears the status line. Seq guards against a stale
// timeout wiping a newer message.
type statusTimeoutMsg struct {
	Seq int
}

// loadDay fetches the record for a day key, creating an empty one when none
// exists, and materializes due recurring templates before handing it to the
// model. Mirrors the CLI's load path so both surfaces see the same board.
func loadDay(repo day.Repository, date string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rec, err := repo.LoadDay(ctx, date)
		if errors.Is(err, day.ErrDayNotFound) {
			rec = day.NewRecord(date)
		} else if err != nil {
			return errMsg{Err: fmt.Errorf("loading day %s: %w", date, err)}
		}

		templates, err := repo.LoadTemplates(ctx)
		if err != nil {
			return errMsg{Err: fmt.Errorf("loading recurring templates: %w", err)}
		}
		when, err := dateutil.ParseDate(date)
		if err != nil {
			return errMsg{Err: err}
		}
		added := recur.MaterializeMissing(templates, when, rec.Tasks)
		if len(added) > 0 {
			rec.Tasks = append(rec.Tasks, added...)
			if err := repo.SaveDay(ctx, rec); err != nil {
				return errMsg{Err: fmt.Errorf("saving day %s: %w", date, err)}
			}
		}

		presets, err := repo.LoadPresets(ctx)
		if err != nil {
			return errMsg{Err: fmt.Errorf("loading presets: %w", err)}
		}

		return dayLoadedMsg{Date: date, Rec: rec, Presets: presets}
	}
}

// clockTick schedules the next now-marker update on the minute.
func clockTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// statusTimeout clears the status line after a short delay.
func statusTimeout(seq int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusTimeoutMsg{Seq: seq}
	})
}
