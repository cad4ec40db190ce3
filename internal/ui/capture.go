package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"flowboard/internal/llm"
)

func (a *App) captureCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "capture <text...>",
		Short: "Turn free-form text into quadrant-sorted tasks",
		Long: `Send a brain dump to the configured LLM and add the extracted tasks
to the day's board, sorted into Eisenhower quadrants.

Example:
  flowboard capture "report due tomorrow, call the dentist, water plants"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			key, err := resolveDate(date)
			if err != nil {
				return err
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			ctx := context.Background()
			resp, err := llm.NewCapturer(client).Capture(ctx, llm.CaptureRequest{
				Input: strings.Join(args, " "),
				Date:  time.Now(),
			})
			if err != nil {
				return err
			}

			tasks := resp.ToTasks()
			if len(tasks) == 0 {
				fmt.Println("No tasks extracted.")
				return nil
			}

			rec, err := a.loadDay(ctx, key)
			if err != nil {
				return err
			}
			for _, t := range tasks {
				rec.AddTask(t)
			}
			if err := a.repo.SaveDay(ctx, rec); err != nil {
				return fmt.Errorf("saving day %s: %w", key, err)
			}

			fmt.Printf("Added %d task(s) to %s:\n", len(tasks), key)
			for _, t := range tasks {
				fmt.Printf("  %s\n", formatQuadrant(t.Quadrant, t.Content))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Target day (default today)")
	return cmd
}
