package timeblock

import (
	"testing"

	"flowboard/internal/task"
)

func TestFindCompletedUnscheduled(t *testing.T) {
	mk := func(content string, progress int) *task.Task {
		tk, err := task.New(content, task.QuadrantImportant)
		if err != nil {
			t.Fatalf("creating task: %v", err)
		}
		tk.Progress = progress
		return tk
	}

	done := mk("done and scheduled", 100)
	doneOrphan := mk("done but never placed", 100)
	doneRecurring := mk("recurring done and scheduled", 100)
	doneRecurring.RecurringID = "template-1"
	pending := mk("still in progress", 60)

	sched := Schedule{
		&Group{ID: "g1", Type: GroupTask, RefID: done.ID, Segments: []Segment{{Start: 500, Duration: 30}}},
		&Group{ID: "g2", Type: GroupRecurring, RefID: doneRecurring.ID, Segments: []Segment{{Start: 600, Duration: 30}}},
		// Preset blocks never satisfy a task reference.
		&Group{ID: "g3", Type: GroupPreset, RefID: doneOrphan.ID, Segments: []Segment{{Start: 700, Duration: 30}}},
	}

	got := FindCompletedUnscheduled([]*task.Task{done, doneOrphan, doneRecurring, pending}, sched)
	if len(got) != 1 || got[0] != doneOrphan {
		t.Fatalf("expected only the orphaned completed task, got %d results", len(got))
	}
}

func TestFindCompletedUnscheduled_Empty(t *testing.T) {
	if got := FindCompletedUnscheduled(nil, nil); got != nil {
		t.Errorf("expected nil, got %v", got)
	}

	tk, err := task.New("unfinished", task.QuadrantUrgent)
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}
	tk.Progress = 40
	if got := FindCompletedUnscheduled([]*task.Task{tk}, nil); got != nil {
		t.Errorf("incomplete tasks never qualify, got %v", got)
	}
}
