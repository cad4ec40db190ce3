package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

var quadrantLabels = map[task.Quadrant]string{
	task.QuadrantUrgentImportant: "Q1 Urgent & Important",
	task.QuadrantImportant:       "Q2 Important",
	task.QuadrantUrgent:          "Q3 Urgent",
	task.QuadrantNeither:         "Q4 Neither",
}

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show a day's board and timeline",
		Long: `Display the task board and timeline for a day without opening the
full interface. The date argument accepts YYYY-MM-DD, weekday names,
"today", "tomorrow", or "yesterday"; it defaults to today.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			date, err := resolveDate(arg)
			if err != nil {
				return err
			}

			rec, err := a.loadDay(context.Background(), date)
			if err != nil {
				return err
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(date))
			printBoard(rec.Tasks)
			fmt.Println()
			printTimeline(rec.Schedule)

			if rec.Summary != "" {
				fmt.Printf("\n%s\n%s\n", formatHeader("Summary"), rec.Summary)
			}
			if len(rec.Recommendations) > 0 {
				fmt.Printf("\n%s\n", formatHeader("Recommendations"))
				for _, r := range rec.Recommendations {
					fmt.Printf("  - %s\n", formatQuadrant(r.Quadrant, r.Content))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printBoard(tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks on the board.")
		return
	}

	for _, q := range []task.Quadrant{
		task.QuadrantUrgentImportant,
		task.QuadrantImportant,
		task.QuadrantUrgent,
		task.QuadrantNeither,
	} {
		var rows []string
		for _, t := range tasks {
			if t.Quadrant != q {
				continue
			}
			rows = append(rows, formatTaskRow(t))
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Println(formatQuadrant(q, quadrantLabels[q]))
		for _, r := range rows {
			fmt.Println(r)
		}
	}
}

func formatTaskRow(t *task.Task) string {
	marker := "[ ]"
	if t.Completed() {
		marker = formatDone("[x]")
	}
	row := fmt.Sprintf("  %s %s", marker, t.Content)
	if t.Progress > 0 && !t.Completed() {
		row += formatMuted(fmt.Sprintf(" (%d%%)", t.Progress))
	}
	if minutes := t.Timer.TotalMillis() / 60000; minutes > 0 {
		row += formatMuted(fmt.Sprintf(" %dm focused", minutes))
	}
	if t.RecurringID != "" {
		row += formatMuted(" ↻")
	}
	return row
}

func printTimeline(sched timeblock.Schedule) {
	fmt.Println(formatHeader("Timeline"))
	if len(sched) == 0 {
		fmt.Println("  no blocks scheduled")
		return
	}

	type row struct {
		start int
		text  string
	}
	var rows []row
	// Leave room for the time range and duration suffix.
	maxLabel := termWidth() - 30
	for _, g := range sched {
		for _, seg := range g.Segments {
			label := g.Title
			if label == "" {
				label = string(g.Type)
			}
			if maxLabel > 3 && len(label) > maxLabel {
				label = label[:maxLabel-3] + "..."
			}
			rows = append(rows, row{
				start: seg.Start,
				text: fmt.Sprintf("  %s  %s%s",
					timeblock.FormatRange(seg.Start, seg.Duration),
					label,
					formatMuted(fmt.Sprintf(" (%dm)", seg.Duration))),
			})
		}
	}
	// Blocks print in clock order regardless of group order.
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			if rows[j].start < rows[i].start {
				rows[i], rows[j] = rows[j], rows[i]
			}
		}
	}
	for _, r := range rows {
		fmt.Println(r.text)
	}
}
