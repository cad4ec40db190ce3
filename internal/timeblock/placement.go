package timeblock

import (
	"math"

	"github.com/google/uuid"

	"flowboard/internal/task"
)

// SourceKind identifies what is being dropped onto the timeline.
type SourceKind string

const (
	SourceTask   SourceKind = "task"
	SourcePreset SourceKind = "preset"
)

// HandleDrop converts a drop event into a new group on the schedule.
// Unrecognized kinds and payloads are pointer noise, not errors: they leave
// the schedule unchanged and return nil.
func (b *Board) HandleDrop(kind SourceKind, payload any, pointerY float64) error {
	switch kind {
	case SourceTask:
		if t, ok := payload.(*task.Task); ok && t != nil {
			return b.DropTask(t, pointerY)
		}
	case SourcePreset:
		if p, ok := payload.(*task.Preset); ok && p != nil {
			return b.DropPreset(p, pointerY)
		}
	}
	return nil
}

// DropTask places a daily task at the pointer position. A task gets at most
// one group per day; the resolved duration is written back onto the task
// record so later placements and analytics reuse it.
func (b *Board) DropTask(t *task.Task, pointerY float64) error {
	sched := b.host.Schedule()
	if sched.HasTaskRef(t.ID) {
		b.host.Notify("task already has a block today", LevelInfo)
		return ErrAlreadyScheduled
	}

	start := b.dropStart(pointerY)
	duration, err := b.fit(start, b.inferDuration(t))
	if err != nil {
		return err // degenerate tail drop, abandoned silently
	}
	if HasCollision(sched, start, duration, "", -1) {
		b.host.Notify("blocks overlap, pick a free slot", LevelError)
		return ErrBlockOverlap
	}

	if real := b.host.TaskByID(t.ID); real != nil {
		real.Duration = duration
	}

	groupType := GroupTask
	if t.RecurringID != "" {
		groupType = GroupRecurring
	}
	g := &Group{
		ID:       uuid.NewString(),
		Type:     groupType,
		RefID:    t.ID,
		Title:    t.Content,
		ColorHue: QuadrantHue(int(t.Quadrant)),
		Segments: []Segment{{Start: start, Duration: duration}},
	}
	b.commit(append(sched, g))
	b.host.Notify("added: "+g.Title, LevelSuccess)
	return nil
}

// DropPreset places a preset template at the pointer position. Presets have
// no one-per-day guard and draw a fresh hue each time.
func (b *Board) DropPreset(p *task.Preset, pointerY float64) error {
	sched := b.host.Schedule()

	start := b.dropStart(pointerY)
	base := p.DefaultDuration
	if base <= 0 {
		base = b.tl.DefaultDuration
	}
	duration, err := b.fit(start, base)
	if err != nil {
		return err
	}
	if HasCollision(sched, start, duration, "", -1) {
		b.host.Notify("blocks overlap, pick a free slot", LevelError)
		return ErrBlockOverlap
	}

	g := &Group{
		ID:       uuid.NewString(),
		Type:     GroupPreset,
		RefID:    p.ID,
		Title:    p.Title,
		ColorHue: b.presetHue(),
		Segments: []Segment{{Start: start, Duration: duration}},
	}
	b.commit(append(sched, g))
	b.host.Notify("added: "+g.Title, LevelSuccess)
	return nil
}

// dropStart converts the pointer offset to a snapped start minute. Only the
// lower bound is clamped here; the upper bound is handled by fit, which
// shortens the block against the window end.
func (b *Board) dropStart(pointerY float64) int {
	start := b.tl.MinuteAt(pointerY)
	if start < b.tl.WindowStart {
		start = b.tl.WindowStart
	}
	return start
}

// inferDuration resolves a task's block duration: accumulated timer work
// first, then the duration saved by an earlier placement, then the default.
func (b *Board) inferDuration(t *task.Task) int {
	duration := 0
	if total := t.Timer.TotalMillis(); total > 0 {
		timerMins := int(math.Floor(float64(total)/60000 + 0.5))
		duration = b.tl.Snap(timerMins)
		if duration < b.tl.MinDuration {
			duration = b.tl.MinDuration
		}
	} else if t.Duration > 0 {
		duration = t.Duration
	}
	if duration < b.tl.MinDuration {
		duration = max(b.tl.DefaultDuration, b.tl.MinDuration)
	}
	return duration
}

// fit clamps the block end to the window and rejects what remains if it
// falls below the minimum duration.
func (b *Board) fit(start, duration int) (int, error) {
	end := min(start+duration, b.tl.WindowEnd)
	actual := end - start
	if actual < b.tl.MinDuration {
		return 0, ErrDurationTooSmall
	}
	return actual, nil
}
