package ui

import (
	"strings"
	"testing"
	"time"

	"flowboard/internal/dateutil"
	"flowboard/internal/task"
)

func TestFormatTaskRow(t *testing.T) {
	DisableColor()

	tests := []struct {
		name string
		task *task.Task
		want []string
	}{
		{
			"open task",
			&task.Task{Content: "write report"},
			[]string{"[ ]", "write report"},
		},
		{
			"completed task",
			&task.Task{Content: "ship it", Progress: 100},
			[]string{"[x]", "ship it"},
		},
		{
			"partial progress",
			&task.Task{Content: "draft", Progress: 40},
			[]string{"[ ]", "draft", "(40%)"},
		},
		{
			"focused time",
			&task.Task{Content: "deep work", Timer: task.Timer{TotalWork: 1_500_000}},
			[]string{"25m focused"},
		},
		{
			"recurring marker",
			&task.Task{Content: "standup", RecurringID: "tpl-1"},
			[]string{"↻"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := formatTaskRow(tt.task)
			for _, want := range tt.want {
				if !strings.Contains(row, want) {
					t.Errorf("row %q missing %q", row, want)
				}
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	today := dateutil.Key(time.Now())

	got, err := resolveDate("")
	if err != nil {
		t.Fatalf("resolveDate(\"\"): %v", err)
	}
	if got != today {
		t.Errorf("resolveDate(\"\") = %q, want %q", got, today)
	}

	if _, err := resolveDate("not-a-date"); err == nil {
		t.Error("resolveDate should reject garbage input")
	}
}

func TestQuadrantLabelsComplete(t *testing.T) {
	for q := task.QuadrantUrgentImportant; q <= task.QuadrantNeither; q++ {
		if quadrantLabels[q] == "" {
			t.Errorf("missing label for quadrant %d", q)
		}
	}
}
