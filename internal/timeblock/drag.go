package timeblock

// DragSession tracks one pointer-driven reposition of a segment. It exists
// from pointer-down to pointer-up and is never persisted.
type DragSession struct {
	GroupID        string
	SegmentIndex   int
	OriginalStart  int
	PointerOriginY float64

	moved bool
}

// Dragging reports whether a drag session is active.
func (b *Board) Dragging() bool {
	return b.drag != nil
}

// DragTarget returns the group id and segment index of the active drag, or
// ("", -1) when idle.
func (b *Board) DragTarget() (string, int) {
	if b.drag == nil {
		return "", -1
	}
	return b.drag.GroupID, b.drag.SegmentIndex
}

// PointerDown begins dragging a segment. It returns false when the target
// does not resolve, leaving the board idle.
func (b *Board) PointerDown(groupID string, segmentIndex int, pointerY float64) bool {
	g := b.host.Schedule().FindGroup(groupID)
	if g == nil || segmentIndex < 0 || segmentIndex >= len(g.Segments) {
		return false
	}
	b.drag = &DragSession{
		GroupID:        groupID,
		SegmentIndex:   segmentIndex,
		OriginalStart:  g.Segments[segmentIndex].Start,
		PointerOriginY: pointerY,
	}
	return true
}

// PointerMove applies a drag update. Zero snapped deltas are dropped as
// pointer noise. A colliding position is rejected silently: the segment
// stays at its last accepted position and the drag continues.
func (b *Board) PointerMove(pointerY float64) {
	if b.drag == nil {
		return
	}

	delta := b.tl.DeltaMinutes(pointerY - b.drag.PointerOriginY)
	if delta == 0 {
		return
	}
	b.drag.moved = true

	sched := b.host.Schedule()
	g := sched.FindGroup(b.drag.GroupID)
	if g == nil || b.drag.SegmentIndex >= len(g.Segments) {
		return
	}
	seg := &g.Segments[b.drag.SegmentIndex]

	newStart := b.tl.ClampStart(b.drag.OriginalStart+delta, seg.Duration)
	if HasCollision(sched, newStart, seg.Duration, g.ID, b.drag.SegmentIndex) {
		return
	}

	seg.Start = newStart
	b.host.SetSchedule(sched)
	b.host.Rerender()
	b.host.Persist()
}

// PointerUp ends the drag. Segments of the group that now touch or overlap
// are merged; the schedule is persisted only if something actually changed,
// so a click without movement writes nothing.
func (b *Board) PointerUp() {
	if b.drag == nil {
		return
	}
	drag := b.drag
	b.drag = nil

	sched := b.host.Schedule()
	merged := false
	if g := sched.FindGroup(drag.GroupID); g != nil {
		merged = MergeAdjacent(g)
	}
	if merged {
		b.host.Notify("blocks merged", LevelSuccess)
	}
	if merged || drag.moved {
		b.commit(sched)
	}
}
