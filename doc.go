// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Nicer Face API server.

Nicer Face is a small public experiment: a visitor is shown 23 pairs of
faces, picks the nicer face of each pair, and is scored on how often they
agreed with everyone else. Completed sessions land on a leaderboard.

# Starting the Server

The server needs a database URL from the environment, a .env file or a flag:

	DATABASE_URL=nicer-face.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - FACE_COUNT (--face-count): catalog size, must be even (default: 46)
  - CORS_ORIGIN (--cors-origin): allowed origin (default: *)
  - --config: YAML, TOML or JSON file with the same keys

# Architecture

  - handlers: HTTP request handlers (sessions, responses, stats)
  - router: chi routes under /api and at the root
  - middleware: request logging, panic recovery, CORS, JSON helpers
  - models: request, response and domain types
  - faces: the face catalog
  - pairing: per-session pair generation
  - scoring: agreement score and niceness
  - store: queries and transactions
  - db: connection, schema, seeding, driver errors
  - ids: session and trial IDs
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
