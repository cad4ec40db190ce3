package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flowboard/internal/recur"
	"flowboard/internal/task"
)

func (a *App) recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring task templates",
		Long: `Recurring templates materialize onto the task board on the days
their rule fires. Rules use RFC 5545 recurrence syntax, for example
"FREQ=DAILY" or "FREQ=WEEKLY;BYDAY=MO,WE,FR".`,
	}

	cmd.AddCommand(a.recurringListCmd())
	cmd.AddCommand(a.recurringAddCmd())
	cmd.AddCommand(a.recurringRemoveCmd())
	return cmd
}

func (a *App) recurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			templates, err := a.repo.LoadTemplates(context.Background())
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}
			if len(templates) == 0 {
				fmt.Println("No recurring templates. Add one with: flowboard recurring add <content> <rule>")
				return nil
			}
			for _, tpl := range templates {
				row := fmt.Sprintf("  %s  %s", formatQuadrant(tpl.Quadrant, tpl.Content), formatMuted(tpl.Rule))
				if tpl.Duration > 0 {
					row += formatMuted(fmt.Sprintf(" %dm", tpl.Duration))
				}
				fmt.Printf("%s\n    id: %s\n", row, formatMuted(tpl.ID))
			}
			return nil
		},
	}
}

func (a *App) recurringAddCmd() *cobra.Command {
	var quadrant int
	var duration int

	cmd := &cobra.Command{
		Use:   "add <content> <rule>",
		Short: "Add a recurring template",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			tpl, err := recur.NewTemplate(args[0], task.Quadrant(quadrant), args[1])
			if err != nil {
				return err
			}
			tpl.Duration = duration

			if err := a.repo.SaveTemplate(context.Background(), tpl); err != nil {
				return fmt.Errorf("saving template: %w", err)
			}
			fmt.Printf("Added recurring template %q (%s)\n", tpl.Content, tpl.Rule)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quadrant, "quadrant", "q", int(task.QuadrantImportant), "Eisenhower quadrant (1-4)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "Default block duration in minutes")
	return cmd
}

func (a *App) recurringRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a recurring template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.repo.DeleteTemplate(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
