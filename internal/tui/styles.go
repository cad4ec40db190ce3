package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the raw colors a theme is built from.
type palette struct {
	bg        string
	bgPane    string
	selection string
	fg        string
	fgMuted   string
	accent    string
	warning   string
	errColor  string
	success   string
	now       string
}

var palettes = map[string]palette{
	"dark": {
		bg:        "#1e1e2e",
		bgPane:    "#181825",
		selection: "#45475a",
		fg:        "#cdd6f4",
		fgMuted:   "#6c7086",
		accent:    "#89b4fa",
		warning:   "#f9e2af",
		errColor:  "#f38ba8",
		success:   "#a6e3a1",
		now:       "#f5c2e7",
	},
	"light": {
		bg:        "#eff1f5",
		bgPane:    "#e6e9ef",
		selection: "#bcc0cc",
		fg:        "#4c4f69",
		fgMuted:   "#8c8fa1",
		accent:    "#1e66f5",
		warning:   "#df8e1d",
		errColor:  "#d20f39",
		success:   "#40a02b",
		now:       "#ea76cb",
	},
}

// Styles holds the lipgloss styles for the TUI, derived from a theme name.
type Styles struct {
	Title      lipgloss.Style
	DateHeader lipgloss.Style

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	PaneTitle   lipgloss.Style

	Task         lipgloss.Style
	TaskDone     lipgloss.Style
	TaskSelected lipgloss.Style
	Muted        lipgloss.Style

	TimeGutter lipgloss.Style
	NowMarker  lipgloss.Style

	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	Help          lipgloss.Style

	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	selection lipgloss.Color
	fg        lipgloss.Color
}

// NewStyles builds styles for the given theme name. Unknown names fall back
// to the dark palette.
func NewStyles(theme string) *Styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["dark"]
	}

	s := &Styles{
		selection: lipgloss.Color(p.selection),
		fg:        lipgloss.Color(p.fg),
	}

	s.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.accent)).
		Bold(true)
	s.DateHeader = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg)).
		Bold(true)

	border := lipgloss.RoundedBorder()
	s.Pane = lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(p.fgMuted)).
		Padding(0, 1)
	s.PaneFocused = s.Pane.
		BorderForeground(lipgloss.Color(p.accent))
	s.PaneTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.accent)).
		Bold(true)

	s.Task = lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg))
	s.TaskDone = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fgMuted)).
		Strikethrough(true)
	s.TaskSelected = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg)).
		Background(lipgloss.Color(p.selection)).
		Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color(p.fgMuted))

	s.TimeGutter = lipgloss.NewStyle().Foreground(lipgloss.Color(p.fgMuted))
	s.NowMarker = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.now)).
		Bold(true)

	s.StatusInfo = lipgloss.NewStyle().Foreground(lipgloss.Color(p.fgMuted))
	s.StatusSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color(p.success))
	s.StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color(p.errColor))
	s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color(p.fgMuted))

	s.InputPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent))
	s.InputLabel = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.warning)).
		Bold(true)

	return s
}

// Block returns the style for a time block with the given hue.
func (s *Styles) Block(hue int, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(hueColor(hue))
	if selected {
		st = st.Background(s.selection).Bold(true)
	}
	return st
}

// Quadrant returns the foreground style matching a quadrant's block hue.
func (s *Styles) Quadrant(hue int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(hueColor(hue))
}

// hueColor converts a block hue to a terminal color. Saturation and
// lightness are fixed; only the hue varies, same as the block palette.
func hueColor(hue int) lipgloss.Color {
	r, g, b := hslToRGB(float64(hue%360), 0.65, 0.62)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// hslToRGB converts HSL (h in degrees, s and l in [0,1]) to 8-bit RGB.
func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	c := (1 - abs(2*l-1)) * s
	hp := h / 60
	x := c * (1 - abs(mod2(hp)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := l - c/2
	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func mod2(f float64) float64 {
	for f >= 2 {
		f -= 2
	}
	return f
}
