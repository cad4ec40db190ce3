package config

import (
	"os"
	"path/filepath"
	"testing"

	"flowboard/internal/timeblock"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Timeline.DayStart != "07:00" {
		t.Errorf("expected day_start 07:00, got %s", cfg.Timeline.DayStart)
	}
	if cfg.Timeline.DayEnd != "02:00" {
		t.Errorf("expected day_end 02:00, got %s", cfg.Timeline.DayEnd)
	}
	if cfg.Timeline.SnapInterval != timeblock.DefaultSnapInterval {
		t.Errorf("expected snap_interval %d, got %d", timeblock.DefaultSnapInterval, cfg.Timeline.SnapInterval)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Timeline.DayStart != "07:00" {
		t.Errorf("expected default day_start, got %s", cfg.Timeline.DayStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[timeline]
day_start = "08:00"
day_end = "23:00"
snap_interval = 10

[llm]
provider = "ollama"
model = "llama3.2"
base_url = "http://localhost:11435"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Timeline.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00, got %s", cfg.Timeline.DayStart)
	}
	if cfg.Timeline.DayEnd != "23:00" {
		t.Errorf("expected day_end 23:00, got %s", cfg.Timeline.DayEnd)
	}
	if cfg.Timeline.SnapInterval != 10 {
		t.Errorf("expected snap_interval 10, got %d", cfg.Timeline.SnapInterval)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama3.2" {
		t.Errorf("expected model llama3.2, got %s", cfg.LLM.Model)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[timeline]
day_start = "08:00"
day_end = "22:00"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("FLOWBOARD_DAY_START", "10:00")
	t.Setenv("FLOWBOARD_LLM_MODEL", "gpt-4o")
	t.Setenv("FLOWBOARD_SNAP_INTERVAL", "15")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Timeline.DayStart != "10:00" {
		t.Errorf("expected day_start 10:00 from env, got %s", cfg.Timeline.DayStart)
	}
	// File value should be kept when no env override
	if cfg.Timeline.DayEnd != "22:00" {
		t.Errorf("expected day_end 22:00 from file, got %s", cfg.Timeline.DayEnd)
	}
	// Env should override default
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o from env, got %s", cfg.LLM.Model)
	}
	if cfg.Timeline.SnapInterval != 15 {
		t.Errorf("expected snap_interval 15 from env, got %d", cfg.Timeline.SnapInterval)
	}
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		dayStart  string
		dayEnd    string
		wantStart int
		wantEnd   int
	}{
		{name: "default window wraps past midnight", dayStart: "07:00", dayEnd: "02:00", wantStart: 420, wantEnd: 1560},
		{name: "same-day window", dayStart: "09:00", dayEnd: "17:00", wantStart: 540, wantEnd: 1020},
		{name: "end at midnight", dayStart: "08:00", dayEnd: "00:00", wantStart: 480, wantEnd: 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Timeline.DayStart = tt.dayStart
			cfg.Timeline.DayEnd = tt.dayEnd

			start, end := cfg.WindowBounds()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("WindowBounds() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestNewTimeline(t *testing.T) {
	cfg := Default()
	tl := cfg.NewTimeline()

	if tl.WindowStart != 420 || tl.WindowEnd != 1560 {
		t.Errorf("window = (%d, %d), want (420, 1560)", tl.WindowStart, tl.WindowEnd)
	}
	if tl.SnapInterval != timeblock.DefaultSnapInterval {
		t.Errorf("snap interval = %d, want %d", tl.SnapInterval, timeblock.DefaultSnapInterval)
	}
	if tl.MinDuration != timeblock.DefaultMinDuration {
		t.Errorf("min duration = %d, want %d", tl.MinDuration, timeblock.DefaultMinDuration)
	}
}

func TestValidate_InvalidDayStart(t *testing.T) {
	cfg := Default()
	cfg.Timeline.DayStart = "7:00" // Missing leading zero

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid day_start")
	}
}

func TestValidate_OutOfRangeTime(t *testing.T) {
	cfg := Default()
	cfg.Timeline.DayEnd = "26:00"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for hour past 23")
	}
}

func TestValidate_TinyWindow(t *testing.T) {
	cfg := Default()
	cfg.Timeline.DayStart = "09:00"
	cfg.Timeline.DayEnd = "09:30"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for a sub-hour window")
	}
}

func TestValidate_BadSnapInterval(t *testing.T) {
	for _, interval := range []int{0, -5, 90} {
		cfg := Default()
		cfg.Timeline.SnapInterval = interval

		if err := cfg.Validate(); err == nil {
			t.Errorf("expected validation error for snap_interval %d", interval)
		}
	}
}

func TestValidate_BadTheme(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown theme")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.Timeline.DayStart = "06:30"
	cfg.Timeline.DayEnd = "23:30"
	cfg.UI.Theme = "light"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Timeline.DayStart != "06:30" {
		t.Errorf("expected day_start 06:30, got %s", loaded.Timeline.DayStart)
	}
	if loaded.Timeline.DayEnd != "23:30" {
		t.Errorf("expected day_end 23:30, got %s", loaded.Timeline.DayEnd)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("expected theme light, got %s", loaded.UI.Theme)
	}
}
