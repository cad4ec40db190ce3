package timeblock

import "slices"

// MergeAdjacent merges touching or overlapping segments within a group and
// reports whether anything merged. Segments are sorted by start first, and
// the scan restarts after every merge so chains collapse in one call.
//
// Durations are summed, not recomputed from the span: merging segments that
// somehow overlap lengthens the result past the raw span, preserving the
// total scheduled time.
func MergeAdjacent(g *Group) bool {
	if g == nil || len(g.Segments) < 2 {
		return false
	}

	slices.SortFunc(g.Segments, func(a, b Segment) int {
		return a.Start - b.Start
	})

	did := false
	for {
		merged := false
		for i := 0; i < len(g.Segments)-1; i++ {
			cur := g.Segments[i]
			next := g.Segments[i+1]
			if cur.End() >= next.Start {
				g.Segments[i].Duration = cur.Duration + next.Duration
				g.Segments = slices.Delete(g.Segments, i+1, i+2)
				merged = true
				did = true
				break
			}
		}
		if !merged {
			return did
		}
	}
}
