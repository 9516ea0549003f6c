package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds all schema statements in execution order. Statements
// are idempotent; the migration system re-runs the full list on startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS posture_sessions (
		id             TEXT PRIMARY KEY,
		posture        TEXT NOT NULL CHECK(posture IN ('standing','sitting','unknown')),
		started_at     TEXT NOT NULL,
		ended_at       TEXT,
		active_seconds INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_posture_sessions_started ON posture_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS daily_totals (
		date             TEXT PRIMARY KEY,
		standing_seconds INTEGER NOT NULL DEFAULT 0,
		sitting_seconds  INTEGER NOT NULL DEFAULT 0,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS session_events (
		ts    TEXT NOT NULL,
		state TEXT NOT NULL CHECK(state IN ('active','idle'))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_session_events_ts ON session_events(ts)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                              TEXT PRIMARY KEY,
		goal_standing_seconds           INTEGER NOT NULL,
		reminder_interval_seconds       INTEGER NOT NULL,
		posture_check_interval_seconds  INTEGER NOT NULL,
		snooze_seconds                  INTEGER NOT NULL,
		idle_threshold_seconds          INTEGER NOT NULL,
		idle_reset_seconds              INTEGER NOT NULL,
		stand_threshold_mm              INTEGER NOT NULL,
		notifications_enabled           INTEGER NOT NULL DEFAULT 1,
		sound_enabled                   INTEGER NOT NULL DEFAULT 1
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
