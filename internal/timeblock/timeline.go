// Package timeblock implements the time-blocking board: the day timeline
// model, collision detection, drop placement, drag repositioning, and the
// merge/split arithmetic that keeps one day's blocks consistent.
//
// All times are integer minutes counted from midnight of the logical day.
// The window deliberately runs past 24:00 so late-night blocks still belong
// to "today".
package timeblock

import (
	"fmt"
	"math"
)

// Default timeline geometry, minutes unless noted.
const (
	DefaultWindowStart     = 420  // 07:00
	DefaultWindowEnd       = 1560 // 02:00 next day
	DefaultSnapInterval    = 5
	DefaultMinDuration     = 15
	DefaultBlockDuration   = 30
	DefaultSplitGap        = 5
	DefaultPixelsPerMinute = 1.0
)

// Timeline holds the geometry of one day's schedule column and the pure
// conversions between minutes and vertical offsets.
type Timeline struct {
	WindowStart     int
	WindowEnd       int
	SnapInterval    int
	MinDuration     int
	DefaultDuration int
	SplitGap        int
	PixelsPerMinute float64
}

// NewTimeline returns a Timeline with the reference geometry.
func NewTimeline() Timeline {
	return Timeline{
		WindowStart:     DefaultWindowStart,
		WindowEnd:       DefaultWindowEnd,
		SnapInterval:    DefaultSnapInterval,
		MinDuration:     DefaultMinDuration,
		DefaultDuration: DefaultBlockDuration,
		SplitGap:        DefaultSplitGap,
		PixelsPerMinute: DefaultPixelsPerMinute,
	}
}

// Snap rounds minutes to the nearest multiple of the snap interval.
// Ties round to the larger multiple.
func (tl Timeline) Snap(minutes int) int {
	return snapRound(float64(minutes), tl.SnapInterval)
}

// snapRound rounds a fractional minute count to the nearest multiple of
// interval, with halves rounding up (toward +inf, also for negatives).
func snapRound(minutes float64, interval int) int {
	if interval <= 0 {
		return int(math.Floor(minutes + 0.5))
	}
	return int(math.Floor(minutes/float64(interval)+0.5)) * interval
}

// Clamp constrains a minute value to the timeline window.
func (tl Timeline) Clamp(minutes int) int {
	if minutes < tl.WindowStart {
		return tl.WindowStart
	}
	if minutes > tl.WindowEnd {
		return tl.WindowEnd
	}
	return minutes
}

// ClampStart constrains a segment start so the full duration stays inside
// the window.
func (tl Timeline) ClampStart(minutes, duration int) int {
	if minutes < tl.WindowStart {
		return tl.WindowStart
	}
	if limit := tl.WindowEnd - duration; minutes > limit {
		return limit
	}
	return minutes
}

// PixelOffset returns the vertical offset of an absolute minute within the
// window.
func (tl Timeline) PixelOffset(minutes int) float64 {
	return float64(minutes-tl.WindowStart) * tl.PixelsPerMinute
}

// MinuteAt converts a vertical offset inside the window back to an absolute
// minute, snapped to the snap interval.
func (tl Timeline) MinuteAt(pixels float64) int {
	return snapRound(pixels/tl.PixelsPerMinute+float64(tl.WindowStart), tl.SnapInterval)
}

// DeltaMinutes converts a vertical pointer delta to a snapped minute delta.
func (tl Timeline) DeltaMinutes(pixels float64) int {
	return snapRound(pixels/tl.PixelsPerMinute, tl.SnapInterval)
}

// FormatClock renders an absolute minute as "HH:MM" with hours wrapped
// modulo 24, so minute 1530 displays as "01:30".
func FormatClock(minutes int) string {
	h := (minutes / 60) % 24
	m := minutes % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatRange renders a start and duration as "HH:MM - HH:MM". Callers rely
// on the modulo-24 wraparound for labels past midnight.
func FormatRange(start, duration int) string {
	return FormatClock(start) + " - " + FormatClock(start+duration)
}
