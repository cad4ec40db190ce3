// Package tui provides the interactive terminal surface: the Eisenhower
// board on the left, the day timeline on the right, and mouse-driven block
// placement on top of the timeblock engine.
package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowboard/internal/config"
	"flowboard/internal/dateutil"
	"flowboard/internal/day"
	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeInput        // typing a new task
	ModePreset       // picking a preset to place
	ModeConfirm      // confirming a delete
)

// pane identifies which column has keyboard focus.
type pane int

const (
	paneBoard pane = iota
	paneTimeline
)

// Timeline layout. One terminal row covers rowMinutes of the day; the
// header and the pane border sit above the first grid row.
const (
	rowMinutes      = 15
	headerRows      = 2
	footerRows      = 2
	boardPaneWidth  = 44 // outer width, borders included
	timelineGutter  = 8  // "HH:MM │ "
	timelineTopY    = headerRows + 1
	timelineLeftPad = 2 // border plus padding
)

// entry is one selectable row on the board pane: a task or a
// recommendation waiting to be accepted.
type entry struct {
	t   *task.Task
	rec bool
}

// blockRef is a flattened view of one segment on the timeline, in clock
// order. The cursor and all keyboard block operations work on these.
type blockRef struct {
	groupID  string
	segIndex int
	start    int
	duration int
	title    string
	hue      int
	kind     timeblock.GroupType
	refID    string
}

// Model is the main TUI model. Board state lives behind pointers shared by
// every copy bubbletea makes of the model.
type Model struct {
	repo   day.Repository
	config *config.Config
	styles *Styles

	tl    timeblock.Timeline
	host  *dayHost
	board *timeblock.Board

	date    string
	presets []*task.Preset
	loading bool

	focus        pane
	mode         Mode
	taskCursor   int
	blockCursor  int
	presetCursor int
	scroll       int // timeline scroll, grid rows

	input         textinput.Model
	inputQuadrant task.Quadrant

	pendingDelete *entry

	now    time.Time
	width  int
	height int

	statusMsg   string
	statusLevel timeblock.Level
	statusSeq   int
}

// New creates the TUI model for today's board.
func New(repo day.Repository, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "what needs doing?"
	ti.CharLimit = 200
	ti.Width = 36

	tl := cfg.NewTimeline()
	host := &dayHost{repo: repo}

	now := time.Now()
	m := Model{
		repo:          repo,
		config:        cfg,
		styles:        NewStyles(cfg.UI.Theme),
		tl:            tl,
		host:          host,
		board:         timeblock.NewBoard(tl, host),
		date:          dateutil.Key(now),
		loading:       true,
		input:         ti,
		inputQuadrant: task.QuadrantUrgentImportant,
		now:           now,
	}
	return m
}

// Init loads today's record and starts the clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadDay(m.repo, m.date), clockTick())
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case dayLoadedMsg:
		if msg.Date != m.date {
			return m, nil // stale load from rapid day switching
		}
		m.host.rec = msg.Rec
		m.presets = msg.Presets
		m.loading = false
		m.taskCursor = 0
		m.blockCursor = 0
		m.scrollToStart()
		return m, nil

	case errMsg:
		return m.withStatus(msg.Err.Error(), timeblock.LevelError)

	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()

	case statusTimeoutMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleMouse maps mouse events in the timeline pane onto the board's
// pointer protocol. Press grabs a block, motion drags it, release merges
// and settles.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.mode != ModeNormal {
			return m, nil
		}
		minute, ok := m.minuteAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		ref, ok := m.blockAt(minute)
		if !ok {
			return m, nil
		}
		if m.board.PointerDown(ref.groupID, ref.segIndex, m.pixelAt(msg.Y)) {
			m.focus = paneTimeline
			m.selectBlock(ref.groupID, ref.segIndex)
		}
		return m, nil

	case tea.MouseActionMotion:
		if !m.board.Dragging() {
			return m, nil
		}
		m.board.PointerMove(m.pixelAt(msg.Y))
		return m.drainBoard()

	case tea.MouseActionRelease:
		if !m.board.Dragging() {
			return m, nil
		}
		m.board.PointerUp()
		return m.drainBoard()
	}
	return m, nil
}

// minuteAt converts a screen position to the timeline minute under it, or
// false when the position is outside the grid.
func (m Model) minuteAt(x, y int) (int, bool) {
	if x < boardPaneWidth+timelineLeftPad || y < timelineTopY {
		return 0, false
	}
	row := y - timelineTopY
	if row >= m.visibleRows() {
		return 0, false
	}
	minute := m.tl.WindowStart + (m.scroll+row)*rowMinutes
	if minute >= m.tl.WindowEnd {
		return 0, false
	}
	return minute, true
}

// pixelAt converts a screen row to the board's pixel coordinate space.
// Only the vertical axis matters for dragging.
func (m Model) pixelAt(y int) float64 {
	row := m.scroll + y - timelineTopY
	return float64(row*rowMinutes) * m.tl.PixelsPerMinute
}

// blockAt returns the block covering the given minute.
func (m Model) blockAt(minute int) (blockRef, bool) {
	for _, ref := range m.blocks() {
		if minute >= ref.start && minute < ref.start+ref.duration {
			return ref, true
		}
	}
	return blockRef{}, false
}

// entries returns the board pane rows: tasks grouped by quadrant, then the
// pending recommendations.
func (m Model) entries() []entry {
	rec := m.host.rec
	if rec == nil {
		return nil
	}
	var out []entry
	for q := task.QuadrantUrgentImportant; q <= task.QuadrantNeither; q++ {
		for _, t := range rec.TasksByQuadrant(q) {
			out = append(out, entry{t: t})
		}
	}
	for _, t := range rec.Recommendations {
		out = append(out, entry{t: t, rec: true})
	}
	return out
}

// blocks returns the timeline segments in clock order.
func (m Model) blocks() []blockRef {
	var out []blockRef
	for _, g := range m.host.Schedule() {
		for i, seg := range g.Segments {
			out = append(out, blockRef{
				groupID:  g.ID,
				segIndex: i,
				start:    seg.Start,
				duration: seg.Duration,
				title:    g.Title,
				hue:      g.ColorHue,
				kind:     g.Type,
				refID:    g.RefID,
			})
		}
	}
	slices.SortFunc(out, func(a, b blockRef) int {
		return a.start - b.start
	})
	return out
}

// selectBlock points the block cursor at the given segment.
func (m *Model) selectBlock(groupID string, segIndex int) {
	for i, ref := range m.blocks() {
		if ref.groupID == groupID && ref.segIndex == segIndex {
			m.blockCursor = i
			m.ensureBlockVisible(ref)
			return
		}
	}
}

// cursorEntry returns the board entry under the cursor, or nil.
func (m Model) cursorEntry() *entry {
	es := m.entries()
	if len(es) == 0 {
		return nil
	}
	i := min(m.taskCursor, len(es)-1)
	return &es[i]
}

// cursorBlock returns the timeline block under the cursor.
func (m Model) cursorBlock() (blockRef, bool) {
	refs := m.blocks()
	if len(refs) == 0 {
		return blockRef{}, false
	}
	return refs[min(m.blockCursor, len(refs)-1)], true
}

// visibleRows returns how many grid rows the timeline pane shows.
func (m Model) visibleRows() int {
	rows := m.height - headerRows - footerRows - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// totalRows returns how many grid rows the full window needs.
func (m Model) totalRows() int {
	return (m.tl.WindowEnd - m.tl.WindowStart + rowMinutes - 1) / rowMinutes
}

func (m *Model) clampScroll() {
	if max := m.totalRows() - m.visibleRows(); m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// scrollToStart positions the viewport at the current time for today and at
// the window start for any other day.
func (m *Model) scrollToStart() {
	m.scroll = 0
	if m.isToday() {
		row := (m.nowMinute() - m.tl.WindowStart) / rowMinutes
		m.scroll = row - m.visibleRows()/3
	}
	m.clampScroll()
}

// ensureBlockVisible scrolls the viewport so the block's first row shows.
func (m *Model) ensureBlockVisible(ref blockRef) {
	row := (ref.start - m.tl.WindowStart) / rowMinutes
	if row < m.scroll {
		m.scroll = row
	}
	if bottom := m.scroll + m.visibleRows() - 1; row > bottom {
		m.scroll = row - m.visibleRows() + 1
	}
	m.clampScroll()
}

func (m Model) isToday() bool {
	return m.date == dateutil.Key(m.now)
}

// nowMinute returns the current wall clock as a window minute, shifting
// early-morning hours past 24:00 when the window runs into the next day.
func (m Model) nowMinute() int {
	minute := m.now.Hour()*60 + m.now.Minute()
	if minute < m.tl.WindowStart && minute+24*60 <= m.tl.WindowEnd {
		minute += 24 * 60
	}
	return minute
}

// withStatus sets the status line and schedules its expiry.
func (m Model) withStatus(msg string, level timeblock.Level) (Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusLevel = level
	m.statusSeq++
	return m, statusTimeout(m.statusSeq)
}

// drainBoard surfaces whatever the board reported during the last call:
// a failed save wins over an ordinary notice.
func (m Model) drainBoard() (Model, tea.Cmd) {
	if err := m.host.takeSaveErr(); err != nil {
		return m.withStatus("save failed: "+err.Error(), timeblock.LevelError)
	}
	if msg, level, ok := m.host.takeNotice(); ok {
		return m.withStatus(msg, level)
	}
	return m, nil
}

// Run starts the TUI over the given repository.
func Run(repo day.Repository, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
