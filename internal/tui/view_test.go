package tui

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"flowboard/internal/day"
	"flowboard/internal/task"
)

func TestMain(m *testing.M) {
	// Fixed profile so rendering does not depend on the test terminal.
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_BoardAndTimeline(t *testing.T) {
	repo := newFakeRepo()
	rec := day.NewRecord(testDate)
	rec.AddTask(newBoardTask(t, "write report", task.QuadrantUrgentImportant))
	g := scheduledGroup(rec, 540, 60)
	g.Title = "deep work"
	m := newTestModel(t, repo, rec)

	out := plainView(m)
	for _, want := range []string{
		"flowboard",
		testDate,
		"Q1 Urgent & Important",
		"write report",
		"09:00",
		"deep work",
		"tab timeline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_EmptyBoardHint(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(t, repo, day.NewRecord(testDate))

	if out := plainView(m); !strings.Contains(out, "no tasks yet, press a") {
		t.Error("view missing the empty-board hint")
	}
}

func TestView_CompletedTaskMarker(t *testing.T) {
	repo := newFakeRepo()
	rec := day.NewRecord(testDate)
	done := newBoardTask(t, "shipped", task.QuadrantImportant)
	done.Progress = 100
	rec.AddTask(done)
	m := newTestModel(t, repo, rec)

	if out := plainView(m); !strings.Contains(out, "[x] shipped") {
		t.Error("completed task should render with an [x] marker")
	}
}

func TestView_RecommendationsSection(t *testing.T) {
	repo := newFakeRepo()
	rec := day.NewRecord(testDate)
	rec.Recommendations = append(rec.Recommendations,
		newBoardTask(t, "carried over", task.QuadrantUrgent))
	m := newTestModel(t, repo, rec)

	out := plainView(m)
	if !strings.Contains(out, "suggested") {
		t.Error("view missing the suggested section")
	}
	if !strings.Contains(out, "carried over") {
		t.Error("view missing the recommendation entry")
	}
}

func TestView_InputMode(t *testing.T) {
	repo := newFakeRepo()
	m := newTestModel(t, repo, day.NewRecord(testDate))
	m = press(m, "a")

	out := plainView(m)
	if !strings.Contains(out, "new task") {
		t.Error("input mode should show the form title")
	}
	if !strings.Contains(out, "Q1 Urgent & Important") {
		t.Error("input mode should show the selected quadrant")
	}
}

func TestView_PresetMode(t *testing.T) {
	repo := newFakeRepo()
	p, err := task.NewPreset("standup", 15)
	if err != nil {
		t.Fatalf("NewPreset: %v", err)
	}
	repo.presets = []*task.Preset{p}
	m := newTestModel(t, repo, day.NewRecord(testDate))
	m = press(m, "p")

	out := plainView(m)
	if !strings.Contains(out, "place a preset") {
		t.Error("preset mode should show the picker title")
	}
	if !strings.Contains(out, "standup (15m)") {
		t.Error("preset mode should list the presets")
	}
}

func TestView_ConfirmMode(t *testing.T) {
	repo := newFakeRepo()
	rec := day.NewRecord(testDate)
	rec.AddTask(newBoardTask(t, "doomed", task.QuadrantNeither))
	m := newTestModel(t, repo, rec)
	m = press(m, "x")

	if out := plainView(m); !strings.Contains(out, `delete "doomed"? y/n`) {
		t.Error("confirm mode should ask before deleting")
	}
}

func TestCopyText(t *testing.T) {
	repo := newFakeRepo()
	rec := day.NewRecord(testDate)
	done := newBoardTask(t, "review", task.QuadrantImportant)
	done.Progress = 100
	rec.AddTask(done)
	g := scheduledGroup(rec, 600, 45)
	g.Title = "planning"
	rec.Summary = "a good day"
	m := newTestModel(t, repo, rec)

	out := m.copyText()
	for _, want := range []string{
		testDate,
		"[x] review (Q2)",
		"10:00 - 10:45  planning",
		"a good day",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("copy text missing %q", want)
		}
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		name string
		hue  int
	}{
		{"red", 0},
		{"green", 120},
		{"blue", 240},
		{"wraps", 480}, // same as 120
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := string(hueColor(tt.hue))
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("hueColor(%d) = %q, want #rrggbb", tt.hue, c)
			}
		})
	}
	if hueColor(480) != hueColor(120) {
		t.Error("hue should wrap modulo 360")
	}
}

func TestHSLToRGB(t *testing.T) {
	r, g, b := hslToRGB(0, 1, 0.5)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("pure red = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
	r, g, b = hslToRGB(120, 1, 0.5)
	if g != 255 || r != 0 || b != 0 {
		t.Errorf("pure green = (%d,%d,%d), want (0,255,0)", r, g, b)
	}
}
