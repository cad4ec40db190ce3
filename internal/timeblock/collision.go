package timeblock

// HasCollision reports whether the half-open interval [start, start+duration)
// overlaps any segment on the schedule.
//
// Exclusion is two-level: excludeGroup with excludeSegment < 0 skips a whole
// group (a brand-new placement checks everything, so pass ""); excludeGroup
// with a segment index skips only that segment, so dragging or splitting one
// segment of a multi-segment group still checks its siblings.
func HasCollision(s Schedule, start, duration int, excludeGroup string, excludeSegment int) bool {
	end := start + duration
	for _, g := range s {
		if excludeGroup != "" && g.ID == excludeGroup {
			if excludeSegment < 0 {
				continue
			}
			for i, seg := range g.Segments {
				if i == excludeSegment {
					continue
				}
				if start < seg.End() && end > seg.Start {
					return true
				}
			}
			continue
		}
		for _, seg := range g.Segments {
			if start < seg.End() && end > seg.Start {
				return true
			}
		}
	}
	return false
}
