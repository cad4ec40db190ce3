package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"flowboard/internal/task"
)

// Color definitions for consistent styling across the UI.
var (
	// Quadrant 1: red for urgent & important
	colorQ1 = color.New(color.FgRed, color.Bold)

	// Quadrant 2: yellow for important
	colorQ2 = color.New(color.FgYellow)

	// Quadrant 3: blue for urgent
	colorQ3 = color.New(color.FgBlue)

	// Quadrant 4: green for neither
	colorQ4 = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Success: completed items
	colorDone = color.New(color.FgGreen, color.Bold)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatQuadrant colors text by Eisenhower quadrant.
func formatQuadrant(q task.Quadrant, s string) string {
	switch q {
	case task.QuadrantUrgentImportant:
		return colorQ1.Sprint(s)
	case task.QuadrantImportant:
		return colorQ2.Sprint(s)
	case task.QuadrantUrgent:
		return colorQ3.Sprint(s)
	default:
		return colorQ4.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatDone formats text for completed items.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}
