package day

import (
	"testing"

	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

func newTask(t *testing.T, content string, quadrant task.Quadrant) *task.Task {
	t.Helper()
	tk, err := task.New(content, quadrant)
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}
	return tk
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord("2025-03-09")

	if rec.Date != "2025-03-09" {
		t.Errorf("date = %q", rec.Date)
	}
	// Collections start empty, not nil, so the persisted JSON has arrays.
	if rec.Tasks == nil || rec.Recommendations == nil || rec.Schedule == nil {
		t.Error("expected initialized collections")
	}
}

func TestRecord_TaskByID(t *testing.T) {
	rec := NewRecord("2025-03-09")
	a := newTask(t, "alpha", task.QuadrantImportant)
	b := newTask(t, "beta", task.QuadrantUrgent)
	rec.AddTask(a)
	rec.AddTask(b)

	if got := rec.TaskByID(b.ID); got != b {
		t.Errorf("TaskByID(%q) = %v", b.ID, got)
	}
	if got := rec.TaskByID("missing"); got != nil {
		t.Errorf("expected nil for unknown id, got %v", got)
	}
}

func TestRecord_RemoveTask_KeepsScheduleGroups(t *testing.T) {
	rec := NewRecord("2025-03-09")
	tk := newTask(t, "doomed", task.QuadrantImportant)
	rec.AddTask(tk)
	rec.Schedule = timeblock.Schedule{
		&timeblock.Group{ID: "g1", Type: timeblock.GroupTask, RefID: tk.ID,
			Segments: []timeblock.Segment{{Start: 500, Duration: 30}}},
	}

	if !rec.RemoveTask(tk.ID) {
		t.Fatal("expected removal to succeed")
	}
	if rec.RemoveTask(tk.ID) {
		t.Error("second removal must report false")
	}
	// The block stays; its reference just dangles.
	if len(rec.Schedule) != 1 {
		t.Errorf("expected schedule untouched, got %d groups", len(rec.Schedule))
	}
}

func TestRecord_Recommendations(t *testing.T) {
	rec := NewRecord("2025-03-09")
	r1 := newTask(t, "read paper", task.QuadrantImportant)
	r2 := newTask(t, "pay bills", task.QuadrantUrgent)
	rec.Recommendations = []*task.Task{r1, r2}

	if !rec.AcceptRecommendation(r1.ID) {
		t.Fatal("expected accept to succeed")
	}
	if len(rec.Recommendations) != 1 || len(rec.Tasks) != 1 {
		t.Fatalf("after accept: %d recs, %d tasks", len(rec.Recommendations), len(rec.Tasks))
	}
	if rec.Tasks[0] != r1 {
		t.Error("accepted recommendation must land on the board")
	}

	if !rec.DismissRecommendation(r2.ID) {
		t.Fatal("expected dismiss to succeed")
	}
	if len(rec.Recommendations) != 0 {
		t.Errorf("after dismiss: %d recs", len(rec.Recommendations))
	}

	if rec.AcceptRecommendation("missing") || rec.DismissRecommendation("missing") {
		t.Error("unknown ids must report false")
	}
}

func TestRecord_TasksByQuadrant(t *testing.T) {
	rec := NewRecord("2025-03-09")
	a := newTask(t, "a", task.QuadrantImportant)
	b := newTask(t, "b", task.QuadrantUrgent)
	c := newTask(t, "c", task.QuadrantImportant)
	rec.AddTask(a)
	rec.AddTask(b)
	rec.AddTask(c)

	got := rec.TasksByQuadrant(task.QuadrantImportant)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("TasksByQuadrant = %v", got)
	}
	if len(rec.TasksByQuadrant(task.QuadrantNeither)) != 0 {
		t.Error("expected no tasks in the empty quadrant")
	}
}

func TestRecord_CompletedUnscheduled(t *testing.T) {
	rec := NewRecord("2025-03-09")
	done := newTask(t, "done elsewhere", task.QuadrantImportant)
	done.Progress = 100
	scheduled := newTask(t, "done on the board", task.QuadrantUrgent)
	scheduled.Progress = 100
	rec.AddTask(done)
	rec.AddTask(scheduled)
	rec.Schedule = timeblock.Schedule{
		&timeblock.Group{ID: "g1", Type: timeblock.GroupTask, RefID: scheduled.ID,
			Segments: []timeblock.Segment{{Start: 600, Duration: 45}}},
	}

	got := rec.CompletedUnscheduled()
	if len(got) != 1 || got[0] != done {
		t.Fatalf("expected only the unscheduled task, got %d", len(got))
	}
}
