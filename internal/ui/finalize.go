package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flowboard/internal/day"
	"flowboard/internal/dateutil"
)

func (a *App) finalizeCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "finalize [date]",
		Short: "Close out a day and move unfinished work to the next",
		Long: `Move a day's unfinished tasks and untouched recommendations onto the
next day's recommendation list. Progress and subtasks survive the move,
timers reset. The finalized day itself is left untouched as history.

Completed tasks that never got a timeline block are reported first; use
--force to skip that check.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			key, err := resolveDate(arg)
			if err != nil {
				return err
			}
			nextKey, err := dateutil.NextDay(key)
			if err != nil {
				return err
			}

			ctx := context.Background()
			today, err := a.loadDay(ctx, key)
			if err != nil {
				return err
			}

			if !force {
				if orphans := today.CompletedUnscheduled(); len(orphans) > 0 {
					fmt.Println("Completed tasks that never made it onto the timeline:")
					for _, t := range orphans {
						fmt.Printf("  - %s\n", t.Content)
					}
					if !promptYesNo("Finalize anyway?") {
						return nil
					}
				}
			}

			next, err := a.loadDay(ctx, nextKey)
			if err != nil {
				return err
			}

			sum := day.Finalize(today, next)
			if sum.Total() == 0 {
				fmt.Println("Nothing to migrate; the day is fully wrapped up.")
				return nil
			}

			if err := a.repo.SaveDay(ctx, next); err != nil {
				return fmt.Errorf("saving day %s: %w", nextKey, err)
			}

			fmt.Printf("Moved %d item(s) to %s (%d unfinished tasks, %d recommendations",
				sum.Added, nextKey, sum.UnfinishedTasks, sum.Recommendations)
			if skipped := sum.Total() - sum.Added; skipped > 0 {
				fmt.Printf(", %d duplicate(s) skipped", skipped)
			}
			fmt.Println(")")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the unscheduled-tasks check")
	return cmd
}
