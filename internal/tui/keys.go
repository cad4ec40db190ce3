package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowboard/internal/dateutil"
	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModePreset:
		return m.handlePresetKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.focus == paneBoard {
			m.focus = paneTimeline
		} else {
			m.focus = paneBoard
		}
		return m, nil

	case "h", "left":
		return m.shiftDay(-1)
	case "l", "right":
		return m.shiftDay(1)
	case "t":
		return m.gotoDay(dateutil.Key(time.Now()))

	case "y":
		if err := clipboard.WriteAll(m.copyText()); err != nil {
			return m.withStatus("copy failed: "+err.Error(), timeblock.LevelError)
		}
		return m.withStatus("day copied to clipboard", timeblock.LevelSuccess)

	case "a":
		m.mode = ModeInput
		m.input.SetValue("")
		m.input.Focus()
		m.inputQuadrant = task.QuadrantUrgentImportant
		return m, textinput.Blink

	case "p":
		if len(m.presets) == 0 {
			return m.withStatus("no presets defined, add one with the preset command", timeblock.LevelInfo)
		}
		m.mode = ModePreset
		m.presetCursor = 0
		return m, nil
	}

	if m.focus == paneBoard {
		return m.handleBoardKeys(msg)
	}
	return m.handleTimelineKeys(msg)
}

// handleBoardKeys handles keys with the task board focused.
func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if n := len(m.entries()); n > 0 && m.taskCursor < n-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}

	case "enter":
		e := m.cursorEntry()
		if e == nil {
			return m, nil
		}
		if e.rec {
			return m.acceptRecommendation(e.t)
		}
		return m.scheduleTask(e.t)

	case " ":
		e := m.cursorEntry()
		if e == nil || e.rec {
			return m, nil
		}
		if e.t.Completed() {
			e.t.Progress = 0
		} else {
			e.t.Progress = 100
		}
		return m.saveRecord()

	case "x":
		e := m.cursorEntry()
		if e == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.pendingDelete = e
	}
	return m, nil
}

// handleTimelineKeys handles keys with the timeline focused.
func (m Model) handleTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if n := len(m.blocks()); n > 0 && m.blockCursor < n-1 {
			m.blockCursor++
			if ref, ok := m.cursorBlock(); ok {
				m.ensureBlockVisible(ref)
			}
		}
	case "k", "up":
		if m.blockCursor > 0 {
			m.blockCursor--
			if ref, ok := m.cursorBlock(); ok {
				m.ensureBlockVisible(ref)
			}
		}

	case "ctrl+d", "pgdown":
		m.scroll += m.visibleRows() / 2
		m.clampScroll()
	case "ctrl+u", "pgup":
		m.scroll -= m.visibleRows() / 2
		m.clampScroll()

	case "J", "shift+down":
		return m.nudgeBlock(1)
	case "K", "shift+up":
		return m.nudgeBlock(-1)

	case "s":
		ref, ok := m.cursorBlock()
		if !ok {
			return m, nil
		}
		// split at the midpoint of the segment
		offset := m.tl.PixelsPerMinute * float64(ref.duration) / 2
		_ = m.board.SplitSegment(ref.groupID, ref.segIndex, offset)
		return m.drainBoard()

	case "x":
		ref, ok := m.cursorBlock()
		if !ok {
			return m, nil
		}
		m.board.DeleteGroup(ref.groupID)
		if m.blockCursor > 0 {
			m.blockCursor--
		}
		return m.drainBoard()

	case "enter", " ":
		ref, ok := m.cursorBlock()
		if !ok || ref.kind == timeblock.GroupPreset {
			return m, nil
		}
		t := m.host.TaskByID(ref.refID)
		if t == nil {
			return m.withStatus("block has no task behind it anymore", timeblock.LevelInfo)
		}
		if t.Completed() {
			t.Progress = 0
		} else {
			t.Progress = 100
		}
		return m.saveRecord()
	}
	return m, nil
}

// handleInputKeys handles the new-task form.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "tab":
		m.inputQuadrant++
		if m.inputQuadrant > task.QuadrantNeither {
			m.inputQuadrant = task.QuadrantUrgentImportant
		}
		return m, nil
	case "shift+tab":
		m.inputQuadrant--
		if m.inputQuadrant < task.QuadrantUrgentImportant {
			m.inputQuadrant = task.QuadrantNeither
		}
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.input.Value())
		t, err := task.New(content, m.inputQuadrant)
		if err != nil {
			return m.withStatus(err.Error(), timeblock.LevelError)
		}
		m.mode = ModeNormal
		m.input.Blur()
		if m.host.rec == nil {
			return m, nil
		}
		m.host.rec.AddTask(t)
		next, cmd := m.saveRecord()
		if cmd != nil {
			return next, cmd // save failed
		}
		return next.withStatus("added: "+t.Content, timeblock.LevelSuccess)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handlePresetKeys handles the preset picker.
func (m Model) handlePresetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		return m, nil
	case "j", "down":
		if m.presetCursor < len(m.presets)-1 {
			m.presetCursor++
		}
	case "k", "up":
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case "enter":
		m.mode = ModeNormal
		if m.presetCursor >= len(m.presets) {
			return m, nil
		}
		return m.schedulePreset(m.presets[m.presetCursor])
	}
	return m, nil
}

// handleConfirmKeys handles the delete confirmation.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		e := m.pendingDelete
		m.mode = ModeNormal
		m.pendingDelete = nil
		if e == nil || m.host.rec == nil {
			return m, nil
		}
		if e.rec {
			m.host.rec.DismissRecommendation(e.t.ID)
		} else {
			m.host.rec.RemoveTask(e.t.ID)
		}
		if m.taskCursor > 0 {
			m.taskCursor--
		}
		next, cmd := m.saveRecord()
		if cmd != nil {
			return next, cmd
		}
		return next.withStatus("removed: "+e.t.Content, timeblock.LevelInfo)

	case "n", "esc":
		m.mode = ModeNormal
		m.pendingDelete = nil
	}
	return m, nil
}

// acceptRecommendation promotes a recommendation onto the board.
func (m Model) acceptRecommendation(t *task.Task) (tea.Model, tea.Cmd) {
	if m.host.rec == nil || !m.host.rec.AcceptRecommendation(t.ID) {
		return m, nil
	}
	next, cmd := m.saveRecord()
	if cmd != nil {
		return next, cmd
	}
	return next.withStatus("accepted: "+t.Content, timeblock.LevelSuccess)
}

// scheduleTask places the task at the first free slot, starting from the
// current time on today's board and from the window start otherwise.
func (m Model) scheduleTask(t *task.Task) (tea.Model, tea.Cmd) {
	est := t.Duration
	if total := t.Timer.TotalMillis(); total > 0 {
		est = m.tl.Snap(int(total / 60000))
	}
	if est < m.tl.MinDuration {
		est = m.tl.DefaultDuration
	}

	start, ok := m.firstFreeStart(est)
	if !ok {
		return m.withStatus("no free slot left today", timeblock.LevelError)
	}
	if err := m.board.DropTask(t, m.tl.PixelOffset(start)); err == nil {
		m.selectBlockByRef(t.ID)
	}
	return m.drainBoard()
}

// schedulePreset places a preset at the first free slot.
func (m Model) schedulePreset(p *task.Preset) (tea.Model, tea.Cmd) {
	est := p.DefaultDuration
	if est <= 0 {
		est = m.tl.DefaultDuration
	}
	start, ok := m.firstFreeStart(est)
	if !ok {
		return m.withStatus("no free slot left today", timeblock.LevelError)
	}
	_ = m.board.DropPreset(p, m.tl.PixelOffset(start))
	return m.drainBoard()
}

// firstFreeStart scans the window on snap boundaries for a gap big enough
// to hold the duration.
func (m Model) firstFreeStart(duration int) (int, bool) {
	sched := m.host.Schedule()
	start := m.tl.WindowStart
	if m.isToday() {
		start = m.tl.ClampStart(m.tl.Snap(m.nowMinute()), duration)
	}
	for ; start+duration <= m.tl.WindowEnd; start += m.tl.SnapInterval {
		if !timeblock.HasCollision(sched, start, duration, "", -1) {
			return start, true
		}
	}
	return 0, false
}

// selectBlockByRef points the cursor at the first block referencing a task.
func (m *Model) selectBlockByRef(refID string) {
	for i, ref := range m.blocks() {
		if ref.refID == refID {
			m.blockCursor = i
			m.ensureBlockVisible(ref)
			return
		}
	}
}

// nudgeBlock moves the selected segment one snap interval via the board's
// pointer protocol, so the same collision and merge rules apply as for a
// mouse drag.
func (m Model) nudgeBlock(dir int) (tea.Model, tea.Cmd) {
	ref, ok := m.cursorBlock()
	if !ok {
		return m, nil
	}
	if !m.board.PointerDown(ref.groupID, ref.segIndex, 0) {
		return m, nil
	}
	m.board.PointerMove(float64(dir*m.tl.SnapInterval) * m.tl.PixelsPerMinute)
	m.board.PointerUp()
	m.selectBlock(ref.groupID, min(ref.segIndex, maxSegIndex(m.host.Schedule(), ref.groupID)))
	return m.drainBoard()
}

// maxSegIndex returns the last valid segment index of a group, or 0 when
// the group is gone (merged away or deleted).
func maxSegIndex(s timeblock.Schedule, groupID string) int {
	if g := s.FindGroup(groupID); g != nil && len(g.Segments) > 0 {
		return len(g.Segments) - 1
	}
	return 0
}

// saveRecord persists the day after a direct record mutation.
func (m Model) saveRecord() (Model, tea.Cmd) {
	if m.host.rec == nil {
		return m, nil
	}
	if err := m.repo.SaveDay(context.Background(), m.host.rec); err != nil {
		return m.withStatus("save failed: "+err.Error(), timeblock.LevelError)
	}
	return m, nil
}

// shiftDay moves the view to an adjacent day.
func (m Model) shiftDay(delta int) (tea.Model, tea.Cmd) {
	when, err := dateutil.ParseDate(m.date)
	if err != nil {
		return m.withStatus(err.Error(), timeblock.LevelError)
	}
	return m.gotoDay(dateutil.Key(when.AddDate(0, 0, delta)))
}

// gotoDay loads another day's record.
func (m Model) gotoDay(date string) (tea.Model, tea.Cmd) {
	if m.board.Dragging() {
		m.board.PointerUp()
	}
	m.date = date
	m.loading = true
	return m, loadDay(m.repo, m.date)
}
