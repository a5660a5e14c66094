// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - FaceCount: number of faces, even and at least 2 (default: 46)
  - CORSOrigin: allowed CORS origin (default: *)

# CLI Flags

	-p, --port          Server port
	-d, --database-url  Database URL
	-t, --database-type Database type
	--face-count        Catalog size
	--cors-origin       Allowed origin
	--config            Config file

# Environment Variables

Flags fall back to environment variables, then to the config file:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	FACE_COUNT    → --face-count
	CORS_ORIGIN   → --cors-origin

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - the database URL is missing
  - the database type is not sqlite or postgres
  - the face count is odd or below 2
*/
package cliparse
