package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowboard/internal/task"
)

const capturePrompt = `You are a task triage assistant for an Eisenhower-matrix day planner.

Today is %s (%s).

The user dumps free-form text describing things they need to do. Break it
into individual tasks and sort each one into a quadrant:
1 = urgent and important
2 = important, not urgent
3 = urgent, not important
4 = neither urgent nor important

Rules:
- One task per actionable item; keep the user's wording.
- duration is an estimate in minutes, a multiple of 5, at least 15. Use 0
  if you cannot estimate.
- Use "subtasks" for explicit checklist items only; otherwise leave it empty.

User input:
"""
%s
"""

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "tasks": [
    {
      "content": "string",
      "quadrant": 1,
      "duration": 30,
      "subtasks": ["string"]
    }
  ]
}`

// CaptureRequest contains the input for task capture.
type CaptureRequest struct {
	Input string
	Date  time.Time
}

// CaptureResponse contains the parsed LLM response.
type CaptureResponse struct {
	Tasks []CapturedTask `json:"tasks"`
}

// CapturedTask is one task extracted from free-form input.
type CapturedTask struct {
	Content  string   `json:"content"`
	Quadrant int      `json:"quadrant"`
	Duration int      `json:"duration"`
	Subtasks []string `json:"subtasks"`
}

// Capturer turns free-form text into quadrant-sorted tasks.
type Capturer struct {
	client Client
}

// NewCapturer creates a Capturer with the given LLM client.
func NewCapturer(client Client) *Capturer {
	return &Capturer{client: client}
}

// Capture extracts tasks from the request's input text.
func (c *Capturer) Capture(ctx context.Context, req CaptureRequest) (*CaptureResponse, error) {
	prompt := fmt.Sprintf(capturePrompt,
		req.Date.Format("2006-01-02"),
		req.Date.Format("Monday"),
		req.Input,
	)

	var resp CaptureResponse
	err := c.client.ChatJSON(ctx, []Message{{Role: "system", Content: prompt}}, &resp)
	if err != nil {
		return nil, fmt.Errorf("capturing tasks: %w", err)
	}
	return &resp, nil
}

// ToTasks converts captured tasks to domain Task objects. Items with empty
// content are dropped; out-of-range quadrants fall back to quadrant 4.
func (cr *CaptureResponse) ToTasks() []*task.Task {
	tasks := make([]*task.Task, 0, len(cr.Tasks))
	for _, ct := range cr.Tasks {
		content := strings.TrimSpace(ct.Content)
		if content == "" {
			continue
		}

		quadrant := task.Quadrant(ct.Quadrant)
		if !quadrant.Valid() {
			quadrant = task.QuadrantNeither
		}

		t, err := task.New(content, quadrant)
		if err != nil {
			continue
		}
		if ct.Duration > 0 {
			t.Duration = ct.Duration
		}
		for _, sub := range ct.Subtasks {
			if sub = strings.TrimSpace(sub); sub != "" {
				t.Subtasks = append(t.Subtasks, task.Subtask{Content: sub})
			}
		}
		tasks = append(tasks, t)
	}
	return tasks
}
