// Package recur manages recurring task templates. Templates carry an RFC
// 5545 recurrence rule and are materialized into plain daily tasks on the
// days they fire.
package recur

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"flowboard/internal/dateutil"
	"flowboard/internal/task"
)

// Validation errors.
var (
	ErrEmptyContent = errors.New("template content cannot be empty")
	ErrInvalidRule  = errors.New("invalid recurrence rule")
)

// Template describes a task that repeats on a recurrence rule.
type Template struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Quadrant  task.Quadrant `json:"quadrant"`
	Duration  int           `json:"duration,omitempty"` // minutes, 0 means unset
	Rule      string        `json:"rule"`               // e.g., "FREQ=WEEKLY;BYDAY=MO,WE,FR"
	CreatedAt time.Time     `json:"createdAt"`
}

// NewTemplate creates a recurring template with validation. The rule is
// parsed once up front so a bad rule fails here, not on every day load.
func NewTemplate(content string, quadrant task.Quadrant, rule string) (*Template, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !quadrant.Valid() {
		return nil, task.ErrInvalidQuadrant
	}
	if _, err := rrule.StrToRRule(rule); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	return &Template{
		ID:        task.NewID(),
		Content:   content,
		Quadrant:  quadrant,
		Rule:      rule,
		CreatedAt: time.Now(),
	}, nil
}

// DueOn reports whether the template fires on the given day. The rule's
// DTSTART anchors at the template's creation day, so a weekly rule created
// on a Monday fires on Mondays from then on.
func (t *Template) DueOn(date time.Time) (bool, error) {
	r, err := rrule.StrToRRule(t.Rule)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	r.DTStart(dateutil.TruncateToDay(t.CreatedAt))

	dayStart := dateutil.TruncateToDay(date)
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	return len(r.Between(dayStart, dayEnd, true)) > 0, nil
}

// Materialize instantiates the template into a daily task. The task keeps a
// back-reference so its timeline blocks render as recurring.
func (t *Template) Materialize() *task.Task {
	return &task.Task{
		ID:          task.NewID(),
		Content:     t.Content,
		Quadrant:    t.Quadrant,
		Duration:    t.Duration,
		RecurringID: t.ID,
		CreatedAt:   time.Now(),
	}
}

// DueTemplates filters templates down to those firing on the given day.
// Templates with rules that fail to parse are skipped rather than blocking
// the day load.
func DueTemplates(templates []*Template, date time.Time) []*Template {
	var due []*Template
	for _, tpl := range templates {
		ok, err := tpl.DueOn(date)
		if err != nil {
			continue
		}
		if ok {
			due = append(due, tpl)
		}
	}
	return due
}

// MaterializeMissing adds a task for every due template that has no task on
// the board yet, matching by template id. It returns the tasks it added.
func MaterializeMissing(templates []*Template, date time.Time, existing []*task.Task) []*task.Task {
	present := make(map[string]bool)
	for _, t := range existing {
		if t.RecurringID != "" {
			present[t.RecurringID] = true
		}
	}

	var added []*task.Task
	for _, tpl := range DueTemplates(templates, date) {
		if present[tpl.ID] {
			continue
		}
		added = append(added, tpl.Materialize())
	}
	return added
}
