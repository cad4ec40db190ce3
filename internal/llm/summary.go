package llm

import (
	"context"
	"fmt"
	"strings"

	"flowboard/internal/day"
	"flowboard/internal/timeblock"
)

const summaryPrompt = `You are a reflective journaling assistant for a day planner.

Write a short end-of-day summary (3-5 sentences, plain prose) for %s based
on the data below. Mention what got done, what slipped, and how the focus
time was spent. Be concrete and encouraging without being saccharine.

%s
Respond with the summary text only, no markdown.`

// Summarizer drafts an end-of-day summary from a day record.
type Summarizer struct {
	client Client
}

// NewSummarizer creates a Summarizer with the given LLM client.
func NewSummarizer(client Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize produces a prose summary of the day.
func (s *Summarizer) Summarize(ctx context.Context, rec *day.Record) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, rec.Date, formatDayContext(rec))

	out, err := s.client.Chat(ctx, []Message{{Role: "system", Content: prompt}})
	if err != nil {
		return "", fmt.Errorf("summarizing day: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// formatDayContext renders the record for the prompt: the task list with
// progress and focus minutes, then the timeline blocks.
func formatDayContext(rec *day.Record) string {
	var sb strings.Builder

	if len(rec.Tasks) == 0 {
		sb.WriteString("Tasks: none recorded\n")
	} else {
		sb.WriteString("Tasks:\n")
		for _, t := range rec.Tasks {
			minutes := t.Timer.TotalMillis() / 60000
			sb.WriteString(fmt.Sprintf("- [Q%d] %s: %d%% done", t.Quadrant, t.Content, t.Progress))
			if minutes > 0 {
				sb.WriteString(fmt.Sprintf(", %d min focused", minutes))
			}
			sb.WriteString("\n")
		}
	}

	if len(rec.Schedule) == 0 {
		sb.WriteString("Timeline: empty\n")
	} else {
		sb.WriteString("Timeline:\n")
		for _, g := range rec.Schedule {
			for _, seg := range g.Segments {
				sb.WriteString(fmt.Sprintf("- %s %s\n",
					timeblock.FormatRange(seg.Start, seg.Duration), g.Title))
			}
		}
	}

	return sb.String()
}
