package timeblock

import (
	"testing"

	"flowboard/internal/task"
)

// fakeHost is an in-memory Host for board tests.
type fakeHost struct {
	sched    Schedule
	tasks    map[string]*task.Task
	notices  []string
	levels   []Level
	persists int
	renders  int
	noDay    bool // simulates no active day loaded
}

func newFakeHost() *fakeHost {
	return &fakeHost{tasks: make(map[string]*task.Task)}
}

func (h *fakeHost) Schedule() Schedule {
	if h.noDay {
		return nil
	}
	return h.sched
}

func (h *fakeHost) SetSchedule(s Schedule) {
	if h.noDay {
		return
	}
	h.sched = s
}

func (h *fakeHost) TaskByID(id string) *task.Task {
	return h.tasks[id]
}

func (h *fakeHost) Notify(message string, level Level) {
	h.notices = append(h.notices, message)
	h.levels = append(h.levels, level)
}

func (h *fakeHost) Persist()  { h.persists++ }
func (h *fakeHost) Rerender() { h.renders++ }

func (h *fakeHost) addTask(t *testing.T, content string, quadrant task.Quadrant) *task.Task {
	t.Helper()
	tk, err := task.New(content, quadrant)
	if err != nil {
		t.Fatalf("creating task: %v", err)
	}
	h.tasks[tk.ID] = tk
	return tk
}

func newTestBoard(h *fakeHost) *Board {
	b := NewBoard(NewTimeline(), h)
	b.presetHue = func() int { return 150 }
	return b
}

// checkNoOverlaps verifies the no-overlap invariant across all groups.
func checkNoOverlaps(t *testing.T, s Schedule) {
	t.Helper()
	type span struct {
		group      string
		start, end int
	}
	var spans []span
	for _, g := range s {
		for _, seg := range g.Segments {
			spans = append(spans, span{g.ID, seg.Start, seg.End()})
		}
	}
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			a, b := spans[i], spans[j]
			if a.start < b.end && b.start < a.end {
				t.Errorf("segments overlap: %s [%d,%d) and %s [%d,%d)",
					a.group, a.start, a.end, b.group, b.start, b.end)
			}
		}
	}
}

func TestBoard_DeleteGroup(t *testing.T) {
	h := newFakeHost()
	h.sched = testSchedule()
	b := newTestBoard(h)

	b.DeleteGroup("g1")

	if len(h.sched) != 1 || h.sched[0].ID != "g2" {
		t.Fatalf("expected only g2 to remain, got %d groups", len(h.sched))
	}
	if h.persists != 1 {
		t.Errorf("expected 1 persist, got %d", h.persists)
	}
	if h.renders != 1 {
		t.Errorf("expected 1 rerender, got %d", h.renders)
	}
}

func TestBoard_DeleteGroup_UnknownID(t *testing.T) {
	h := newFakeHost()
	h.sched = testSchedule()
	b := newTestBoard(h)

	b.DeleteGroup("nope")

	if len(h.sched) != 2 {
		t.Errorf("expected schedule unchanged, got %d groups", len(h.sched))
	}
	// Delete always persists, even when nothing matched.
	if h.persists != 1 {
		t.Errorf("expected 1 persist, got %d", h.persists)
	}
}

func TestBoard_NoActiveDay(t *testing.T) {
	h := newFakeHost()
	h.noDay = true
	b := newTestBoard(h)
	tk := h.addTask(t, "orphan", task.QuadrantImportant)

	// Nothing should panic and nothing should stick.
	_ = b.DropTask(tk, 100)
	b.PointerMove(50)
	b.PointerUp()
	b.DeleteGroup("g1")

	if h.sched != nil {
		t.Errorf("expected no schedule to be stored, got %v", h.sched)
	}
}

func TestBoard_InvariantAfterMixedOperations(t *testing.T) {
	h := newFakeHost()
	b := newTestBoard(h)
	tl := b.Timeline()

	tk := h.addTask(t, "write report", task.QuadrantUrgentImportant)
	tk.Duration = 60
	preset, _ := task.NewPreset("review", 45)

	if err := b.DropTask(tk, tl.PixelOffset(480)); err != nil {
		t.Fatalf("drop task: %v", err)
	}
	if err := b.DropPreset(preset, tl.PixelOffset(600)); err != nil {
		t.Fatalf("drop preset: %v", err)
	}

	// Split the task block, then drag its second half around.
	g := h.sched[0]
	if err := b.SplitSegment(g.ID, 0, 25); err != nil {
		t.Fatalf("split: %v", err)
	}
	if !b.PointerDown(g.ID, 1, 0) {
		t.Fatal("pointer down failed")
	}
	b.PointerMove(40) // try to move the second half downward
	b.PointerUp()

	checkNoOverlaps(t, h.sched)
}
