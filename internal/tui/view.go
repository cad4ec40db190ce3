package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"flowboard/internal/dateutil"
	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

var quadrantLabels = map[task.Quadrant]string{
	task.QuadrantUrgentImportant: "Q1 Urgent & Important",
	task.QuadrantImportant:       "Q2 Important",
	task.QuadrantUrgent:          "Q3 Urgent",
	task.QuadrantNeither:         "Q4 Neither",
}

// View renders the full screen.
func (m Model) View() string {
	if m.width == 0 {
		return "starting..."
	}

	header := m.renderHeader()
	rows := m.visibleRows()

	boardStyle := m.paneStyle(paneBoard).Width(boardPaneWidth - 2).Height(rows)
	timelineWidth := m.width - boardPaneWidth
	if timelineWidth < timelineGutter+4 {
		timelineWidth = timelineGutter + 4
	}
	timelineStyle := m.paneStyle(paneTimeline).Width(timelineWidth - 2).Height(rows)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		boardStyle.Render(m.renderBoard(boardPaneWidth-4, rows)),
		timelineStyle.Render(m.renderTimeline(timelineWidth-4, rows)),
	)

	return header + "\n" + body + "\n" + m.renderFooter()
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p && m.mode == ModeNormal {
		return m.styles.PaneFocused
	}
	return m.styles.Pane
}

func (m Model) renderHeader() string {
	date := m.date
	if when, err := parseWeekday(m.date); err == nil {
		date = when + " " + m.date
	}
	line := m.styles.Title.Render("flowboard") + "  " + m.styles.DateHeader.Render(date)
	if m.loading {
		line += "  " + m.styles.Muted.Render("loading...")
	}
	return line + "\n"
}

// renderBoard renders the left pane: the new-task form or preset picker
// when one is open, then the quadrant sections and recommendations.
func (m Model) renderBoard(width, rows int) string {
	var lines []string

	switch m.mode {
	case ModeInput:
		lines = append(lines,
			m.styles.PaneTitle.Render("new task"),
			m.styles.InputPrompt.Render("> ")+m.input.View(),
			m.styles.InputLabel.Render(quadrantLabels[m.inputQuadrant]),
			"")
	case ModePreset:
		lines = append(lines, m.styles.PaneTitle.Render("place a preset"))
		for i, p := range m.presets {
			row := fmt.Sprintf("%s (%dm)", p.Title, p.DefaultDuration)
			if i == m.presetCursor {
				row = m.styles.TaskSelected.Render(row)
			} else {
				row = m.styles.Task.Render(row)
			}
			lines = append(lines, row)
		}
		lines = append(lines, "")
	}

	es := m.entries()
	if len(es) == 0 {
		lines = append(lines, m.styles.Muted.Render("no tasks yet, press a"))
	}

	idx := 0
	for q := task.QuadrantUrgentImportant; q <= task.QuadrantNeither; q++ {
		var section []string
		for ; idx < len(es) && !es[idx].rec && es[idx].t.Quadrant == q; idx++ {
			section = append(section, m.renderEntry(es[idx], idx, width))
		}
		if len(section) == 0 {
			continue
		}
		hue := timeblock.QuadrantHue(int(q))
		lines = append(lines, m.styles.Quadrant(hue).Bold(true).Render(quadrantLabels[q]))
		lines = append(lines, section...)
	}

	if idx < len(es) {
		lines = append(lines, "", m.styles.Muted.Render("suggested"))
		for ; idx < len(es); idx++ {
			lines = append(lines, m.renderEntry(es[idx], idx, width))
		}
	}

	if len(lines) > rows {
		lines = lines[:rows]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(e entry, idx, width int) string {
	marker := "[ ]"
	if e.rec {
		marker = " → "
	} else if e.t.Completed() {
		marker = "[x]"
	}

	row := marker + " " + e.t.Content
	if e.t.Progress > 0 && !e.t.Completed() {
		row += fmt.Sprintf(" (%d%%)", e.t.Progress)
	}
	if e.t.RecurringID != "" {
		row += " ↻"
	}
	row = ansi.Truncate(row, width, "…")

	selected := m.focus == paneBoard && m.mode == ModeNormal && idx == min(m.taskCursor, len(m.entries())-1)
	switch {
	case selected:
		return m.styles.TaskSelected.Render(row)
	case !e.rec && e.t.Completed():
		return m.styles.TaskDone.Render(row)
	case e.rec:
		return m.styles.Muted.Render(row)
	default:
		return m.styles.Task.Render(row)
	}
}

// renderTimeline renders the day grid: one row per rowMinutes, hour labels
// in the gutter, blocks colored by hue, and a now marker on today.
func (m Model) renderTimeline(width, rows int) string {
	selected, hasSelected := m.cursorBlock()
	nowMin := m.nowMinute()

	lines := make([]string, 0, rows)
	for r := m.scroll; r < m.scroll+rows; r++ {
		minute := m.tl.WindowStart + r*rowMinutes
		if minute >= m.tl.WindowEnd {
			lines = append(lines, "")
			continue
		}

		gutter := "      "
		if minute%60 == 0 {
			gutter = timeblock.FormatClock(minute) + " "
		}
		if m.isToday() && nowMin >= minute && nowMin < minute+rowMinutes {
			gutter = m.styles.NowMarker.Render("now ▸ ") + m.styles.NowMarker.Render("│ ")
		} else {
			gutter = m.styles.TimeGutter.Render(gutter + "│ ")
		}

		body := ""
		if ref, ok := m.blockAt(minute); ok {
			isSel := hasSelected && m.focus == paneTimeline &&
				ref.groupID == selected.groupID && ref.segIndex == selected.segIndex
			style := m.styles.Block(ref.hue, isSel)
			if ref.start >= minute && ref.start < minute+rowMinutes {
				label := fmt.Sprintf("▍ %s  %s (%dm)",
					timeblock.FormatRange(ref.start, ref.duration), ref.title, ref.duration)
				body = style.Render(ansi.Truncate(label, width-timelineGutter, "…"))
			} else {
				body = style.Render("▍")
			}
		}

		lines = append(lines, gutter+body)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	status := " "
	if m.statusMsg != "" {
		switch m.statusLevel {
		case timeblock.LevelSuccess:
			status = m.styles.StatusSuccess.Render(m.statusMsg)
		case timeblock.LevelError:
			status = m.styles.StatusError.Render(m.statusMsg)
		default:
			status = m.styles.StatusInfo.Render(m.statusMsg)
		}
	}

	var help string
	switch {
	case m.mode == ModeInput:
		help = "enter add · tab quadrant · esc cancel"
	case m.mode == ModePreset:
		help = "j/k choose · enter place · esc cancel"
	case m.mode == ModeConfirm && m.pendingDelete != nil:
		help = fmt.Sprintf("delete %q? y/n", m.pendingDelete.t.Content)
	case m.focus == paneBoard:
		help = "tab timeline · j/k · a add · enter schedule · space done · x delete · h/l day · p preset · y copy · q quit"
	default:
		help = "tab board · j/k select · J/K nudge · s split · x remove · space done · drag with mouse · q quit"
	}

	return status + "\n" + m.styles.Help.Render(ansi.Truncate(help, m.width, "…"))
}

// copyText renders the day as plain text for the clipboard.
func (m Model) copyText() string {
	var b strings.Builder
	b.WriteString(m.date + "\n")

	rec := m.host.rec
	if rec == nil {
		return b.String()
	}

	if len(rec.Tasks) > 0 {
		b.WriteString("\nTasks:\n")
		for _, t := range rec.Tasks {
			marker := "[ ]"
			if t.Completed() {
				marker = "[x]"
			}
			fmt.Fprintf(&b, "  %s %s (Q%d)\n", marker, t.Content, t.Quadrant)
		}
	}

	if blocks := m.blocks(); len(blocks) > 0 {
		b.WriteString("\nTimeline:\n")
		for _, ref := range blocks {
			fmt.Fprintf(&b, "  %s  %s\n", timeblock.FormatRange(ref.start, ref.duration), ref.title)
		}
	}

	if rec.Summary != "" {
		b.WriteString("\nSummary:\n" + rec.Summary + "\n")
	}
	return b.String()
}

// parseWeekday returns the weekday name of a day key.
func parseWeekday(date string) (string, error) {
	when, err := dateutil.ParseDate(date)
	if err != nil {
		return "", err
	}
	return when.Weekday().String(), nil
}
