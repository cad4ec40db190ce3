package timeblock

import (
	"testing"

	"flowboard/internal/task"
)

func dragSchedule() Schedule {
	return Schedule{
		&Group{
			ID:   "g1",
			Type: GroupTask,
			Segments: []Segment{
				{Start: 500, Duration: 30}, // 500-530
				{Start: 600, Duration: 30}, // 600-630
			},
		},
		&Group{
			ID:       "g2",
			Type:     GroupPreset,
			Segments: []Segment{{Start: 700, Duration: 45}}, // 700-745
		},
	}
}

func TestBoard_PointerDown(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	if !b.PointerDown("g1", 1, 10) {
		t.Fatal("expected pointer down to resolve")
	}
	if !b.Dragging() {
		t.Error("expected an active drag session")
	}
	gid, idx := b.DragTarget()
	if gid != "g1" || idx != 1 {
		t.Errorf("drag target = (%s, %d), want (g1, 1)", gid, idx)
	}

	b.PointerUp()
	if b.Dragging() {
		t.Error("expected drag to end on pointer up")
	}
}

func TestBoard_PointerDown_BadTarget(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	if b.PointerDown("nope", 0, 0) {
		t.Error("unknown group must not start a drag")
	}
	if b.PointerDown("g1", 5, 0) {
		t.Error("out-of-range segment must not start a drag")
	}
	if b.Dragging() {
		t.Error("expected board to stay idle")
	}
}

func TestBoard_DragMove(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	b.PointerDown("g1", 0, 100)
	b.PointerMove(120) // +20px -> +20 minutes

	if got := h.sched[0].Segments[0].Start; got != 520 {
		t.Errorf("segment start = %d, want 520", got)
	}
	if h.persists != 1 || h.renders != 1 {
		t.Errorf("accepted move must persist and rerender, got %d/%d", h.persists, h.renders)
	}

	// Deltas stay relative to the original start, not the last position.
	b.PointerMove(150) // +50px from origin
	if got := h.sched[0].Segments[0].Start; got != 550 {
		t.Errorf("segment start = %d, want 550", got)
	}
}

func TestBoard_DragMove_SubSnapNoise(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	b.PointerDown("g1", 0, 100)
	b.PointerMove(102) // snaps to zero delta

	if got := h.sched[0].Segments[0].Start; got != 500 {
		t.Errorf("segment start = %d, want 500 unchanged", got)
	}
	if h.persists != 0 {
		t.Errorf("noise move must not persist, got %d", h.persists)
	}

	// Pointer up after pure noise writes nothing either.
	b.PointerUp()
	if h.persists != 0 {
		t.Errorf("click without movement must not persist, got %d", h.persists)
	}
}

func TestBoard_DragMove_CollisionHolds(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	b.PointerDown("g2", 0, 0)
	b.PointerMove(-90) // 700 -> 610, overlaps g1's 600-630 block

	if got := h.sched[1].Segments[0].Start; got != 700 {
		t.Errorf("segment start = %d, want 700 held in place", got)
	}
	if h.persists != 0 {
		t.Errorf("rejected move must not persist, got %d", h.persists)
	}

	// The drag survives the rejection; a later valid delta still lands.
	b.PointerMove(-40) // 700 -> 660, clear of everything
	if got := h.sched[1].Segments[0].Start; got != 660 {
		t.Errorf("segment start = %d, want 660", got)
	}
}

func TestBoard_DragMove_SiblingBlocks(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	// Dragging g1's first segment onto its own second segment is rejected:
	// only the dragged segment is excluded from the check.
	b.PointerDown("g1", 0, 0)
	b.PointerMove(110) // 500 -> 610, overlaps sibling at 600-630

	if got := h.sched[0].Segments[0].Start; got != 500 {
		t.Errorf("segment start = %d, want 500 held in place", got)
	}
}

func TestBoard_DragMove_ClampsToWindow(t *testing.T) {
	h := newFakeHost()
	h.sched = Schedule{
		&Group{ID: "g1", Type: GroupTask, Segments: []Segment{{Start: 440, Duration: 30}}},
	}
	b := newTestBoard(h)

	b.PointerDown("g1", 0, 0)
	b.PointerMove(-200) // would land at 240, clamped to window start

	if got := h.sched[0].Segments[0].Start; got != 420 {
		t.Errorf("segment start = %d, want 420", got)
	}

	b.PointerMove(2000) // clamped so the block still ends inside the window
	if got := h.sched[0].Segments[0].Start; got != 1530 {
		t.Errorf("segment start = %d, want 1530", got)
	}
}

func TestBoard_PointerUp_MergesTouchingSegments(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	// Drag the second segment up until it touches the first (530).
	b.PointerDown("g1", 1, 0)
	b.PointerMove(-70) // 600 -> 530
	persistsBefore := h.persists
	b.PointerUp()

	g := h.sched.FindGroup("g1")
	if len(g.Segments) != 1 {
		t.Fatalf("expected segments merged, got %v", g.Segments)
	}
	if g.Segments[0] != (Segment{Start: 500, Duration: 60}) {
		t.Errorf("merged segment = %v, want {500 60}", g.Segments[0])
	}
	if h.persists != persistsBefore+1 {
		t.Errorf("pointer up after merge must persist once more, got %d", h.persists)
	}
	if len(h.notices) == 0 || h.levels[len(h.levels)-1] != LevelSuccess {
		t.Error("expected a success notification for the merge")
	}
}

func TestBoard_PointerUp_PersistsMovedSegment(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)

	b.PointerDown("g1", 0, 0)
	b.PointerMove(25)
	persistsBefore := h.persists
	b.PointerUp()

	if h.persists != persistsBefore+1 {
		t.Errorf("pointer up after movement must persist, got %d", h.persists)
	}
	if tk := h.sched.FindGroup("g1"); len(tk.Segments) != 2 {
		t.Errorf("no merge expected, got %v", tk.Segments)
	}

	// Idle pointer up is a no-op.
	b.PointerUp()
	if h.persists != persistsBefore+1 {
		t.Errorf("idle pointer up must not persist, got %d", h.persists)
	}
}

func TestBoard_DragSessionNotPersisted(t *testing.T) {
	h := newFakeHost()
	h.sched = dragSchedule()
	b := newTestBoard(h)
	_ = h.addTask(t, "unused", task.QuadrantImportant)

	b.PointerDown("g1", 0, 0)
	b.PointerMove(20)
	b.PointerUp()

	// The schedule holds only positions, never drag bookkeeping.
	for _, g := range h.sched {
		for _, seg := range g.Segments {
			if seg.Duration <= 0 {
				t.Errorf("segment %v has non-positive duration", seg)
			}
		}
	}
	if b.Dragging() {
		t.Error("expected no drag session after pointer up")
	}
}
