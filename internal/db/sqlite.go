// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"flowboard/internal/day"
	"flowboard/internal/recur"
	"flowboard/internal/task"
	"flowboard/internal/timeblock"
)

// SQLite implements day.Repository using SQLite. Day collections are stored
// as JSON documents keyed by date; the whole record is replaced on save,
// matching the save-whole-day flow of the app.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadDay retrieves the record for a day key.
func (s *SQLite) LoadDay(ctx context.Context, date string) (*day.Record, error) {
	query := `
		SELECT tasks, recommendations, summary, schedule
		FROM days
		WHERE date = ?
	`

	var tasksJSON, recsJSON, summary, scheduleJSON string
	err := s.db.QueryRowContext(ctx, query, date).Scan(&tasksJSON, &recsJSON, &summary, &scheduleJSON)
	if err == sql.ErrNoRows {
		return nil, day.ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying day %s: %w", date, err)
	}

	rec := day.NewRecord(date)
	rec.Summary = summary
	if err := json.Unmarshal([]byte(tasksJSON), &rec.Tasks); err != nil {
		return nil, fmt.Errorf("decoding tasks for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(recsJSON), &rec.Recommendations); err != nil {
		return nil, fmt.Errorf("decoding recommendations for %s: %w", date, err)
	}
	if err := json.Unmarshal([]byte(scheduleJSON), &rec.Schedule); err != nil {
		return nil, fmt.Errorf("decoding schedule for %s: %w", date, err)
	}

	return rec, nil
}

// SaveDay writes a day record, replacing any existing record for the day.
func (s *SQLite) SaveDay(ctx context.Context, rec *day.Record) error {
	tasksJSON, err := encodeList(rec.Tasks)
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	recsJSON, err := encodeList(rec.Recommendations)
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}
	scheduleJSON, err := encodeSchedule(rec.Schedule)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}

	query := `
		INSERT INTO days (date, tasks, recommendations, summary, schedule, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			tasks = excluded.tasks,
			recommendations = excluded.recommendations,
			summary = excluded.summary,
			schedule = excluded.schedule,
			updated_at = excluded.updated_at
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.Date,
		tasksJSON,
		recsJSON,
		rec.Summary,
		scheduleJSON,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving day %s: %w", rec.Date, err)
	}

	return nil
}

// ListDays returns the stored day keys in ascending order.
func (s *SQLite) ListDays(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT date FROM days ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("querying days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning day: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating days: %w", err)
	}

	return dates, nil
}

// LoadPresets returns all preset block templates in display order.
func (s *SQLite) LoadPresets(ctx context.Context) ([]*task.Preset, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, default_duration
		FROM presets
		ORDER BY position, title
	`)
	if err != nil {
		return nil, fmt.Errorf("querying presets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var presets []*task.Preset
	for rows.Next() {
		var p task.Preset
		if err := rows.Scan(&p.ID, &p.Title, &p.DefaultDuration); err != nil {
			return nil, fmt.Errorf("scanning preset: %w", err)
		}
		presets = append(presets, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating presets: %w", err)
	}

	return presets, nil
}

// SavePresets replaces the preset collection.
func (s *SQLite) SavePresets(ctx context.Context, presets []*task.Preset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM presets`); err != nil {
		return fmt.Errorf("clearing presets: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO presets (id, title, default_duration, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, p := range presets {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Title, p.DefaultDuration, i); err != nil {
			return fmt.Errorf("inserting preset %q: %w", p.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// LoadTemplates returns all recurring task templates.
func (s *SQLite) LoadTemplates(ctx context.Context) ([]*recur.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, quadrant, duration, rule, created_at
		FROM templates
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var templates []*recur.Template
	for rows.Next() {
		var (
			tpl       recur.Template
			createdAt string
		)
		if err := rows.Scan(&tpl.ID, &tpl.Content, &tpl.Quadrant, &tpl.Duration, &tpl.Rule, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		tpl.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
		templates = append(templates, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}

	return templates, nil
}

// SaveTemplate inserts or updates a recurring template.
func (s *SQLite) SaveTemplate(ctx context.Context, tpl *recur.Template) error {
	query := `
		INSERT INTO templates (id, content, quadrant, duration, rule, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			quadrant = excluded.quadrant,
			duration = excluded.duration,
			rule = excluded.rule
	`
	_, err := s.db.ExecContext(ctx, query,
		tpl.ID,
		tpl.Content,
		tpl.Quadrant,
		tpl.Duration,
		tpl.Rule,
		tpl.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving template %q: %w", tpl.Content, err)
	}

	return nil
}

// DeleteTemplate removes a recurring template.
func (s *SQLite) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("template %s not found", id)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// encodeList marshals a task list, mapping nil to an empty JSON array so
// loads never see null collections.
func encodeList(tasks []*task.Task) (string, error) {
	if tasks == nil {
		tasks = []*task.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func encodeSchedule(sched timeblock.Schedule) (string, error) {
	if sched == nil {
		sched = timeblock.Schedule{}
	}
	data, err := json.Marshal(sched)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
