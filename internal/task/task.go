// Package task defines the core domain types for flowboard.
package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors.
var (
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrInvalidQuadrant = errors.New("quadrant must be between 1 and 4")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Quadrant classifies a task on the Eisenhower matrix.
type Quadrant int

const (
	QuadrantUrgentImportant Quadrant = 1 // urgent & important
	QuadrantImportant       Quadrant = 2 // important, not urgent
	QuadrantUrgent          Quadrant = 3 // urgent, not important
	QuadrantNeither         Quadrant = 4 // neither
)

// Valid returns true if the quadrant is a valid value.
func (q Quadrant) Valid() bool {
	return q >= QuadrantUrgentImportant && q <= QuadrantNeither
}

// Timer holds accumulated focus time for a task. Values are milliseconds,
// matching the persisted JSON shape.
type Timer struct {
	TotalWork     int64 `json:"totalWork"`
	TotalPomodoro int64 `json:"totalPomodoro,omitempty"`
	Running       bool  `json:"isRunning,omitempty"`
}

// TotalMillis returns stopwatch plus pomodoro time in milliseconds.
func (t Timer) TotalMillis() int64 {
	return t.TotalWork + t.TotalPomodoro
}

// Subtask is a single checklist item under a task.
type Subtask struct {
	Content string `json:"content"`
	Done    bool   `json:"done"`
}

// Task represents one daily task on the board.
type Task struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Quadrant    Quadrant  `json:"quadrant"`
	Progress    int       `json:"progress"` // 0-100
	Timer       Timer     `json:"timer"`
	Duration    int       `json:"duration,omitempty"` // minutes, saved on first placement
	RecurringID string    `json:"recurringId,omitempty"`
	Subtasks    []Subtask `json:"subtasks,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.NewString()
}

// New creates a new Task with validation.
func New(content string, quadrant Quadrant) (*Task, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !quadrant.Valid() {
		return nil, ErrInvalidQuadrant
	}
	return &Task{
		ID:        uuid.NewString(),
		Content:   content,
		Quadrant:  quadrant,
		CreatedAt: time.Now(),
	}, nil
}

// Completed returns true once the task's progress reaches 100 percent.
func (t *Task) Completed() bool {
	return t.Progress >= 100
}

// SyncProgress recomputes progress from subtask completion. Tasks without
// subtasks keep their manually set progress.
func (t *Task) SyncProgress() {
	if len(t.Subtasks) == 0 {
		return
	}
	done := 0
	for _, s := range t.Subtasks {
		if s.Done {
			done++
		}
	}
	t.Progress = (done*100 + len(t.Subtasks)/2) / len(t.Subtasks)
}
