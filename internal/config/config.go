// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"flowboard/internal/timeblock"
)

// Config holds the application configuration.
type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	LLM      LLMConfig      `toml:"llm"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// TimelineConfig holds the day timeline settings. DayEnd at or before
// DayStart means the window runs into the next day, so "07:00" to "02:00"
// covers a 19-hour day.
type TimelineConfig struct {
	DayStart     string `toml:"day_start"`     // e.g., "07:00"
	DayEnd       string `toml:"day_end"`       // e.g., "02:00" (next day)
	SnapInterval int    `toml:"snap_interval"` // minutes
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "openai", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o-mini"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "dark" or "light"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			DayStart:     "07:00",
			DayEnd:       "02:00",
			SnapInterval: timeblock.DefaultSnapInterval,
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "flowboard.db"
	}
	return filepath.Join(home, ".local", "share", "flowboard", "flowboard.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "flowboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLOWBOARD_DAY_START"); v != "" {
		cfg.Timeline.DayStart = v
	}
	if v := os.Getenv("FLOWBOARD_DAY_END"); v != "" {
		cfg.Timeline.DayEnd = v
	}
	if v := os.Getenv("FLOWBOARD_SNAP_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Timeline.SnapInterval = n
		}
	}

	if v := os.Getenv("FLOWBOARD_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("FLOWBOARD_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("FLOWBOARD_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("FLOWBOARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("FLOWBOARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Timeline.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Timeline.DayEnd, "day_end"); err != nil {
		return err
	}
	start, end := c.WindowBounds()
	if end-start < 60 {
		return errors.New("the day window must cover at least one hour")
	}
	if c.Timeline.SnapInterval <= 0 || c.Timeline.SnapInterval > 60 {
		return fmt.Errorf("snap_interval must be between 1 and 60, got %d", c.Timeline.SnapInterval)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.UI.Theme != "dark" && c.UI.Theme != "light" {
		return fmt.Errorf("theme must be dark or light, got %q", c.UI.Theme)
	}
	return nil
}

// WindowBounds returns the day window as minutes from midnight. An end at or
// before the start wraps into the next day. Call Validate first; malformed
// times come back as zeros.
func (c *Config) WindowBounds() (start, end int) {
	start = parseClock(c.Timeline.DayStart)
	end = parseClock(c.Timeline.DayEnd)
	if end <= start {
		end += 24 * 60
	}
	return start, end
}

// NewTimeline builds the timeline described by the configuration.
func (c *Config) NewTimeline() timeblock.Timeline {
	tl := timeblock.NewTimeline()
	tl.WindowStart, tl.WindowEnd = c.WindowBounds()
	tl.SnapInterval = c.Timeline.SnapInterval
	return tl
}

// parseClock converts "HH:MM" to minutes from midnight. Returns 0 for
// malformed input.
func parseClock(t string) int {
	if len(t) != 5 || t[2] != ':' {
		return 0
	}
	hour, err1 := strconv.Atoi(t[0:2])
	min, err2 := strconv.Atoi(t[3:5])
	if err1 != nil || err2 != nil {
		return 0
	}
	return hour*60 + min
}

// validateTime checks if a time string is in HH:MM format with a valid range.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' || !isDigits(t[0:2]) || !isDigits(t[3:5]) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour, _ := strconv.Atoi(t[0:2])
	min, _ := strconv.Atoi(t[3:5])
	if hour > 23 || min > 59 {
		return fmt.Errorf("%s must be a valid time of day, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
