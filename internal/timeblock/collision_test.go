package timeblock

import "testing"

func testSchedule() Schedule {
	return Schedule{
		&Group{
			ID:    "g1",
			Type:  GroupTask,
			RefID: "t1",
			Segments: []Segment{
				{Start: 500, Duration: 30}, // 500-530
				{Start: 600, Duration: 60}, // 600-660
			},
		},
		&Group{
			ID:    "g2",
			Type:  GroupPreset,
			RefID: "p1",
			Segments: []Segment{
				{Start: 700, Duration: 45}, // 700-745
			},
		},
	}
}

func TestHasCollision(t *testing.T) {
	s := testSchedule()

	tests := []struct {
		name     string
		start    int
		duration int
		want     bool
	}{
		{name: "before everything", start: 420, duration: 60, want: false},
		{name: "touching start is free", start: 470, duration: 30, want: false},
		{name: "touching end is free", start: 530, duration: 30, want: false},
		{name: "overlap at start", start: 515, duration: 20, want: true},
		{name: "overlap at end", start: 480, duration: 30, want: true},
		{name: "fully inside", start: 610, duration: 20, want: true},
		{name: "fully contains", start: 590, duration: 90, want: true},
		{name: "between groups", start: 660, duration: 40, want: false},
		{name: "hits second group", start: 690, duration: 20, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCollision(s, tt.start, tt.duration, "", -1); got != tt.want {
				t.Errorf("HasCollision(%d, %d) = %v, want %v", tt.start, tt.duration, got, tt.want)
			}
		})
	}
}

func TestHasCollision_Exclusions(t *testing.T) {
	s := testSchedule()

	t.Run("whole group excluded", func(t *testing.T) {
		// Overlaps both g1 segments, but g1 is fully excluded.
		if HasCollision(s, 500, 160, "g1", -1) {
			t.Error("expected no collision with g1 excluded")
		}
		// Still collides with g2.
		if !HasCollision(s, 500, 250, "g1", -1) {
			t.Error("expected collision with g2")
		}
	})

	t.Run("single segment excluded keeps siblings", func(t *testing.T) {
		// Same place as g1's first segment, which is excluded.
		if HasCollision(s, 500, 30, "g1", 0) {
			t.Error("expected no collision against excluded segment")
		}
		// Sibling segment at 600 must still be checked.
		if !HasCollision(s, 590, 30, "g1", 0) {
			t.Error("expected collision with sibling segment")
		}
	})

	t.Run("exclusion does not leak to other groups", func(t *testing.T) {
		if !HasCollision(s, 700, 30, "g1", 0) {
			t.Error("expected collision with g2 despite g1 exclusion")
		}
	})
}

func TestHasCollision_Empty(t *testing.T) {
	if HasCollision(nil, 500, 60, "", -1) {
		t.Error("expected no collision on empty schedule")
	}
}
