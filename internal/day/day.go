// Package day holds the per-day record: the task board, recommendations,
// the summary, and the timeline schedule. Records are keyed by YYYY-MM-DD.
package day

import (
	"errors"

	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

// Errors returned by day operations.
var (
	ErrDayNotFound = errors.New("day not found")
)

// Record is everything the app keeps for one calendar day. The schedule is
// stored wholesale; groups reference tasks by id and tolerate the referent
// being deleted.
type Record struct {
	Date            string             `json:"date"` // YYYY-MM-DD
	Tasks           []*task.Task       `json:"tasks"`
	Recommendations []*task.Task       `json:"recommendations"`
	Summary         string             `json:"summary"`
	Schedule        timeblock.Schedule `json:"schedule"`
}

// NewRecord returns an empty record for the given day key.
func NewRecord(date string) *Record {
	return &Record{
		Date:            date,
		Tasks:           []*task.Task{},
		Recommendations: []*task.Task{},
		Schedule:        timeblock.Schedule{},
	}
}

// TaskByID returns the day's task with the given id, or nil.
func (r *Record) TaskByID(id string) *task.Task {
	for _, t := range r.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// AddTask appends a task to the day's board.
func (r *Record) AddTask(t *task.Task) {
	r.Tasks = append(r.Tasks, t)
}

// RemoveTask deletes the task with the given id and reports whether it was
// present. Schedule groups referencing it are left in place; the timeline
// shows them until the user removes them.
func (r *Record) RemoveTask(id string) bool {
	for i, t := range r.Tasks {
		if t.ID == id {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// AcceptRecommendation promotes the recommendation with the given id onto
// the task board and reports whether it was found.
func (r *Record) AcceptRecommendation(id string) bool {
	for i, rec := range r.Recommendations {
		if rec.ID == id {
			r.Recommendations = append(r.Recommendations[:i], r.Recommendations[i+1:]...)
			r.Tasks = append(r.Tasks, rec)
			return true
		}
	}
	return false
}

// DismissRecommendation drops the recommendation with the given id and
// reports whether it was found.
func (r *Record) DismissRecommendation(id string) bool {
	for i, rec := range r.Recommendations {
		if rec.ID == id {
			r.Recommendations = append(r.Recommendations[:i], r.Recommendations[i+1:]...)
			return true
		}
	}
	return false
}

// TasksByQuadrant returns the day's tasks in the given quadrant, in board
// order.
func (r *Record) TasksByQuadrant(q task.Quadrant) []*task.Task {
	var out []*task.Task
	for _, t := range r.Tasks {
		if t.Quadrant == q {
			out = append(out, t)
		}
	}
	return out
}

// CompletedUnscheduled returns completed tasks that never got a timeline
// block.
func (r *Record) CompletedUnscheduled() []*task.Task {
	return timeblock.FindCompletedUnscheduled(r.Tasks, r.Schedule)
}
