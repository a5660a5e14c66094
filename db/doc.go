// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages its schema.

# Connections

Open accepts the configured DATABASE_TYPE and URL:

	conn, err := db.Open("postgres", "postgres://...")
	conn, err := db.Open("sqlite", "file:nicer.db")

SQLite pools are limited to one connection, with foreign keys and a busy
timeout enabled.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}
	if err := db.SeedFaceStats(ctx, conn, catalog); err != nil {
		log.Fatal(err)
	}

Both are safe to call on every start. The DDL sticks to SQL understood by
PostgreSQL and SQLite alike.

# Tables

  - sessions: one row per run, score and completion time set on completion
  - trials: append-only decisions, unique per (session_id, trial_number)
  - face_stats: shown/selected counters, CHECK times_selected <= times_shown

# Relationships

	sessions 1──* trials
	trials *──2 face_stats (by face id, not a foreign key)

# Driver Errors

IsUniqueViolation recognises duplicate-key errors from lib/pq and
modernc.org/sqlite.
*/
package db
