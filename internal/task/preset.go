package task

import (
	"errors"

	"github.com/google/uuid"
)

// Preset duration bounds in minutes.
const (
	MinPresetDuration = 15
	MaxPresetDuration = 480
)

// ErrEmptyPresetTitle is returned when creating a preset without a title.
var ErrEmptyPresetTitle = errors.New("preset title cannot be empty")

// Preset is a reusable, duration-tagged block template not tied to any task.
type Preset struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DefaultDuration int    `json:"defaultDuration"` // minutes
}

// NewPreset creates a preset, clamping the duration to the allowed range.
func NewPreset(title string, defaultDuration int) (*Preset, error) {
	if title == "" {
		return nil, ErrEmptyPresetTitle
	}
	if defaultDuration < MinPresetDuration {
		defaultDuration = MinPresetDuration
	}
	if defaultDuration > MaxPresetDuration {
		defaultDuration = MaxPresetDuration
	}
	return &Preset{
		ID:              uuid.NewString(),
		Title:           title,
		DefaultDuration: defaultDuration,
	}, nil
}
