package timeblock

import "math/rand"

// GroupType identifies where a scheduled group came from.
type GroupType string

const (
	GroupTask      GroupType = "task"      // a daily task dragged onto the timeline
	GroupPreset    GroupType = "preset"    // a reusable preset template
	GroupRecurring GroupType = "recurring" // a task materialized from a recurring template
)

// Segment is one contiguous block of time within a group.
type Segment struct {
	Start    int `json:"start"`    // minutes from midnight
	Duration int `json:"duration"` // minutes
}

// End returns the exclusive end minute of the segment.
func (s Segment) End() int {
	return s.Start + s.Duration
}

// Group is one placed task or preset occupying one or more segments on a
// single day's timeline. RefID is a weak reference into the task or preset
// collection; the referent may be deleted independently.
type Group struct {
	ID       string    `json:"id"`
	Type     GroupType `json:"type"`
	RefID    string    `json:"refId"`
	Title    string    `json:"title"`
	ColorHue int       `json:"colorHue"` // 0-359
	Segments []Segment `json:"segments"`
}

// FromTask reports whether the group references a daily task. Groups
// materialized from recurring templates count as tasks for scheduling
// purposes.
func (g *Group) FromTask() bool {
	return g.Type == GroupTask || g.Type == GroupRecurring
}

// Schedule is the ordered set of groups for one day. It is persisted
// wholesale as a plain JSON array.
type Schedule []*Group

// FindGroup returns the group with the given id, or nil.
func (s Schedule) FindGroup(id string) *Group {
	for _, g := range s {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// HasTaskRef reports whether any task-sourced group references the task id.
func (s Schedule) HasTaskRef(taskID string) bool {
	for _, g := range s {
		if g.FromTask() && g.RefID == taskID {
			return true
		}
	}
	return false
}

// TaskRefs returns the set of task ids referenced by task-sourced groups.
func (s Schedule) TaskRefs() map[string]bool {
	refs := make(map[string]bool)
	for _, g := range s {
		if g.FromTask() {
			refs[g.RefID] = true
		}
	}
	return refs
}

// QuadrantHue maps an Eisenhower quadrant to the block hue.
func QuadrantHue(quadrant int) int {
	switch quadrant {
	case 1:
		return 0 // red: urgent & important
	case 2:
		return 45 // orange: important
	case 3:
		return 200 // blue: urgent
	case 4:
		return 120 // green: neither
	default:
		return 210
	}
}

// randomPresetHue returns a hue in [100, 300). Preset blocks get a fresh hue
// on every placement.
func randomPresetHue() int {
	return rand.Intn(200) + 100
}
