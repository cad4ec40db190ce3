package timeblock

import "flowboard/internal/task"

// FindCompletedUnscheduled returns tasks that reached 100 percent progress
// without ever getting a block on the day's timeline. Read-only; the
// finalize-day flow uses it to warn before rolling the day over.
func FindCompletedUnscheduled(tasks []*task.Task, sched Schedule) []*task.Task {
	refs := sched.TaskRefs()
	var unscheduled []*task.Task
	for _, t := range tasks {
		if t.Completed() && !refs[t.ID] {
			unscheduled = append(unscheduled, t)
		}
	}
	return unscheduled
}
