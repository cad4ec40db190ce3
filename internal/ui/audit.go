package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [date]",
		Short: "List completed tasks missing from the timeline",
		Long: `Check a day for tasks marked done that never got a time block. These
are usually work that happened off the books; schedule them retroactively
to keep the timeline honest.`,
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

			rec, err := a.loadDay(context.Background(), key)
			if err != nil {
				return err
			}

			orphans := rec.CompletedUnscheduled()
			if len(orphans) == 0 {
				fmt.Printf("%s: every completed task has a time block.\n", key)
				return nil
			}

			fmt.Printf("%s: %d completed task(s) missing from the timeline:\n", key, len(orphans))
			for _, t := range orphans {
				fmt.Printf("  - %s\n", formatQuadrant(t.Quadrant, t.Content))
			}
			return nil
		},
	}
}
