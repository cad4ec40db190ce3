package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"flowboard/internal/task"
)

func (a *App) presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage reusable preset blocks",
		Long: `Presets are reusable block templates (lunch, standup, deep work)
that can be dropped onto any day's timeline without creating a task.`,
	}

	cmd.AddCommand(a.presetListCmd())
	cmd.AddCommand(a.presetAddCmd())
	cmd.AddCommand(a.presetRemoveCmd())
	return cmd
}

func (a *App) presetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(_ *cobra.Command, _ []string) error {
			presets, err := a.repo.LoadPresets(context.Background())
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			if len(presets) == 0 {
				fmt.Println("No presets defined. Add one with: flowboard preset add <title> <minutes>")
				return nil
			}
			for _, p := range presets {
				fmt.Printf("  %-24s %s\n", p.Title, formatMuted(fmt.Sprintf("%dm", p.DefaultDuration)))
			}
			return nil
		},
	}
}

func (a *App) presetAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> <minutes>",
		Short: "Add a preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("minutes must be a number, got %q", args[1])
			}

			p, err := task.NewPreset(args[0], minutes)
			if err != nil {
				return err
			}
			if p.DefaultDuration != minutes {
				fmt.Printf("duration clamped to %dm\n", p.DefaultDuration)
			}

			ctx := context.Background()
			presets, err := a.repo.LoadPresets(ctx)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			presets = append(presets, p)
			if err := a.repo.SavePresets(ctx, presets); err != nil {
				return fmt.Errorf("saving presets: %w", err)
			}

			fmt.Printf("Added preset %q (%dm)\n", p.Title, p.DefaultDuration)
			return nil
		},
	}
}

func (a *App) presetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <title>",
		Short: "Remove a preset by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			presets, err := a.repo.LoadPresets(ctx)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}

			kept := presets[:0]
			removed := 0
			for _, p := range presets {
				if p.Title == args[0] {
					removed++
					continue
				}
				kept = append(kept, p)
			}
			if removed == 0 {
				return fmt.Errorf("no preset named %q", args[0])
			}

			if err := a.repo.SavePresets(ctx, kept); err != nil {
				return fmt.Errorf("saving presets: %w", err)
			}
			fmt.Printf("Removed %q\n", args[0])
			return nil
		},
	}
}
