package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"flowboard/internal/llm"
)

func (a *App) summaryCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "summary [date]",
		Short: "Draft an end-of-day summary with the configured LLM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			key, err := resolveDate(arg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			rec, err := a.loadDay(ctx, key)
			if err != nil {
				return err
			}

			client, err := llm.NewClient(a.config.LLM.Provider, a.config.LLM.Model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			text, err := llm.NewSummarizer(client).Summarize(ctx, rec)
			if err != nil {
				return err
			}

			fmt.Println(text)

			if save {
				rec.Summary = text
				if err := a.repo.SaveDay(ctx, rec); err != nil {
					return fmt.Errorf("saving day %s: %w", key, err)
				}
				fmt.Println(formatMuted("\nsaved to day record"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Store the summary on the day record")
	return cmd
}
