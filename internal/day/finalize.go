package day

import (
	"slices"

	"flowboard/internal/task"
)

// MigrationSummary reports what a finalize pass moved to the next day.
type MigrationSummary struct {
	UnfinishedTasks int
	Recommendations int
	Added           int // after content dedup against the target list
}

// Total returns the number of candidate items considered for migration.
func (m MigrationSummary) Total() int {
	return m.UnfinishedTasks + m.Recommendations
}

// Finalize closes out today by moving its unfinished tasks and untouched
// recommendations onto the next day's recommendation list. Progress and
// subtasks survive the move, timers do not. Items whose content already
// appears in the target list are skipped.
//
// Today's record is not modified; it stays as the historical snapshot.
func Finalize(today, next *Record) MigrationSummary {
	var sum MigrationSummary

	seen := make(map[string]bool, len(next.Recommendations))
	for _, rec := range next.Recommendations {
		seen[rec.Content] = true
	}

	add := func(src *task.Task) {
		if seen[src.Content] {
			return
		}
		seen[src.Content] = true
		next.Recommendations = append(next.Recommendations, carryOver(src))
		sum.Added++
	}

	for _, t := range today.Tasks {
		if !t.Completed() {
			sum.UnfinishedTasks++
			add(t)
		}
	}
	for _, rec := range today.Recommendations {
		sum.Recommendations++
		add(rec)
	}

	return sum
}

// carryOver copies a task into a fresh recommendation: new id, zeroed
// timer, progress and subtasks intact.
func carryOver(src *task.Task) *task.Task {
	quadrant := src.Quadrant
	if !quadrant.Valid() {
		quadrant = task.QuadrantNeither
	}
	return &task.Task{
		ID:        task.NewID(),
		Content:   src.Content,
		Quadrant:  quadrant,
		Progress:  src.Progress,
		Subtasks:  slices.Clone(src.Subtasks),
		CreatedAt: src.CreatedAt,
	}
}
