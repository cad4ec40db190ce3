package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS days (
			date            TEXT PRIMARY KEY,
			tasks           TEXT NOT NULL DEFAULT '[]',
			recommendations TEXT NOT NULL DEFAULT '[]',
			summary         TEXT NOT NULL DEFAULT '',
			schedule        TEXT NOT NULL DEFAULT '[]',
			updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS presets (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			default_duration INTEGER NOT NULL,
			position         INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS templates (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			quadrant   INTEGER NOT NULL CHECK(quadrant BETWEEN 1 AND 4),
			duration   INTEGER NOT NULL DEFAULT 0,
			rule       TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_presets_position ON presets(position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
