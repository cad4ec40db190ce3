package timeblock

import (
	"errors"

	"flowboard/internal/task"
)

// Rejection errors. All are non-fatal: the schedule is left unchanged and,
// where the reference behavior shows a toast, the host is notified.
var (
	ErrAlreadyScheduled = errors.New("task already has a block today")
	ErrBlockOverlap     = errors.New("block overlaps an existing block")
	ErrDurationTooSmall = errors.New("block duration below minimum")
	ErrInvalidSplit     = errors.New("no valid split position")
	ErrSplitOverlap     = errors.New("second block overlaps an existing block")
	ErrNoSuchSegment    = errors.New("segment not found")
)

// Level indicates notification severity.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Host is the boundary the board calls back into. Schedule returns the
// active day's schedule (nil when no day is loaded, which makes every board
// operation a graceful no-op). Persist and Rerender are fire-and-forget;
// serializing writes is the host's concern.
type Host interface {
	Schedule() Schedule
	SetSchedule(Schedule)
	TaskByID(id string) *task.Task
	Notify(message string, level Level)
	Persist()
	Rerender()
}

// Board is the stateful engine over one day's schedule. It owns the drag
// session explicitly rather than as package state, so independent boards
// never share interaction state.
type Board struct {
	tl   Timeline
	host Host
	drag *DragSession

	// presetHue is swappable so tests get stable colors.
	presetHue func() int
}

// NewBoard creates a board over the given host.
func NewBoard(tl Timeline, host Host) *Board {
	return &Board{
		tl:        tl,
		host:      host,
		presetHue: randomPresetHue,
	}
}

// Timeline returns the board's timeline geometry.
func (b *Board) Timeline() Timeline {
	return b.tl
}

// DeleteGroup removes a group wholesale. Unknown ids are ignored; the
// operation always persists and rerenders.
func (b *Board) DeleteGroup(groupID string) {
	sched := b.host.Schedule()
	next := make(Schedule, 0, len(sched))
	for _, g := range sched {
		if g.ID != groupID {
			next = append(next, g)
		}
	}
	b.host.SetSchedule(next)
	b.host.Rerender()
	b.host.Persist()
	b.host.Notify("block removed", LevelInfo)
}

// commit stores the schedule and triggers the host's render and save.
func (b *Board) commit(s Schedule) {
	b.host.SetSchedule(s)
	b.host.Rerender()
	b.host.Persist()
}
