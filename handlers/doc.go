// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Nicer Face API.

# Handler Types

Each handler is a struct built around a *store.Store:

  - SessionHandler: session creation, completion and lookup
  - ResponseHandler: recording one trial decision
  - StatsHandler: aggregate face stats, leaderboard and health

Handlers are created via constructor functions:

	sessionHandler := handlers.NewSessionHandler(st, pairing.NewGenerator(catalog, nil))
	responseHandler := handlers.NewResponseHandler(st, catalog)

# Session Flow

	POST /sessions               → CreateSession (returns 23 face pairs)
	POST /responses              → RecordResponse (one per trial)
	POST /sessions/{id}/complete → CompleteSession (computes agreement score)
	GET  /sessions/{id}          → GetSession

A response updates the face stats in the same transaction that stores the
trial. Sending the same trial_number twice for a session returns 409 and
leaves the stats alone.

# Agreement Score

CompleteSession scores the session against the current stats, which already
include the session's own picks. See package scoring. Completing a session
again recomputes and overwrites the score.

# Errors

Every error body is {"error": "..."}. Storage failures are logged and
answered with a generic 500.
*/
package handlers
