// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/nicer-face/faces"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedFaceStats inserts a zeroed stats row for every face in the catalog.
// Existing rows keep their counters.
func SeedFaceStats(ctx context.Context, db *sql.DB, catalog *faces.Catalog) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range catalog.IDs() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO face_stats (face_id, times_shown, times_selected)
			VALUES ($1, 0, 0)
			ON CONFLICT (face_id) DO NOTHING
		`, id)
		if err != nil {
			return fmt.Errorf("failed to seed face %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit face seed: %w", err)
	}
	return nil
}

// Schema is written in the subset of SQL shared by PostgreSQL and SQLite.
const schema = `
-- Sessions
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    completed_at TIMESTAMP,
    agreement_score INTEGER CHECK (agreement_score >= 0 AND agreement_score <= 100)
);

CREATE INDEX IF NOT EXISTS idx_sessions_leaderboard ON sessions(agreement_score, completed_at);

-- Face stats (one row per catalog face)
CREATE TABLE IF NOT EXISTS face_stats (
    face_id TEXT PRIMARY KEY,
    times_shown INTEGER NOT NULL DEFAULT 0 CHECK (times_shown >= 0),
    times_selected INTEGER NOT NULL DEFAULT 0 CHECK (times_selected >= 0),
    CHECK (times_selected <= times_shown)
);

-- Trials
CREATE TABLE IF NOT EXISTS trials (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
    trial_number INTEGER NOT NULL CHECK (trial_number >= 1),
    left_face TEXT NOT NULL,
    right_face TEXT NOT NULL,
    selected_face TEXT NOT NULL,
    response_time_ms INTEGER CHECK (response_time_ms >= 0),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (selected_face = left_face OR selected_face = right_face),
    UNIQUE (session_id, trial_number)
);

CREATE INDEX IF NOT EXISTS idx_trials_session_id ON trials(session_id);
`
