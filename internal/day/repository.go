package day

import (
	"context"

	"flowboard/internal/recur"
	"flowboard/internal/task"
)

// Repository defines the storage interface for day records, presets, and
// recurring templates.
type Repository interface {
	// LoadDay retrieves the record for a day key.
	// Returns ErrDayNotFound when no record exists for the day.
	LoadDay(ctx context.Context, date string) (*Record, error)

	// SaveDay writes a day record, replacing any existing record for the
	// same day.
	SaveDay(ctx context.Context, rec *Record) error

	// ListDays returns the stored day keys in ascending order.
	ListDays(ctx context.Context) ([]string, error)

	// LoadPresets returns all preset block templates.
	LoadPresets(ctx context.Context) ([]*task.Preset, error)

	// SavePresets replaces the preset collection.
	SavePresets(ctx context.Context, presets []*task.Preset) error

	// LoadTemplates returns all recurring task templates.
	LoadTemplates(ctx context.Context) ([]*recur.Template, error)

	// SaveTemplate inserts or updates a recurring template.
	SaveTemplate(ctx context.Context, tpl *recur.Template) error

	// DeleteTemplate removes a recurring template.
	DeleteTemplate(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}
