package timeblock

import (
	"fmt"
	"slices"
)

// SplitSegment splits one segment in two at the clicked offset, measured in
// pixels from the top of the segment. Both halves must hold at least the
// minimum duration and a fixed gap is always inserted between them, so a
// fresh split is never immediately re-merged.
//
// Only the second half needs a collision check: the first half occupies a
// prefix of the original's space and cannot newly collide.
func (b *Board) SplitSegment(groupID string, segmentIndex int, clickOffsetPixels float64) error {
	sched := b.host.Schedule()
	g := sched.FindGroup(groupID)
	if g == nil || segmentIndex < 0 || segmentIndex >= len(g.Segments) {
		return ErrNoSuchSegment
	}
	seg := g.Segments[segmentIndex]
	original := seg.Duration

	first := b.tl.DeltaMinutes(clickOffsetPixels)
	if first < b.tl.MinDuration {
		first = b.tl.MinDuration
	}
	if limit := original - b.tl.MinDuration; first > limit {
		first = limit
	}
	if first < b.tl.MinDuration || original-first < b.tl.MinDuration {
		b.host.Notify(fmt.Sprintf("blocks need at least %d minutes each to split", b.tl.MinDuration), LevelInfo)
		return ErrInvalidSplit
	}

	second := original - first
	secondStart := seg.Start + first + b.tl.SplitGap

	if HasCollision(sched, secondStart, second, g.ID, segmentIndex) {
		b.host.Notify("second block would overlap, pick another split point", LevelError)
		return ErrSplitOverlap
	}

	g.Segments[segmentIndex] = Segment{Start: seg.Start, Duration: first}
	g.Segments = slices.Insert(g.Segments, segmentIndex+1, Segment{Start: secondStart, Duration: second})

	b.commit(sched)
	b.host.Notify("block split", LevelSuccess)
	return nil
}
