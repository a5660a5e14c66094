// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Nicer Face API.

# Route Registration

NewRouter creates a chi router with all endpoints:

	mux := router.NewRouter(db, cfg, catalog)

Every route is served both under /api and at the root.

# Endpoints

	GET  /health                 - Liveness and server time
	POST /sessions               - Start a session
	POST /responses              - Record one trial
	POST /sessions/{id}/complete - Compute the agreement score
	GET  /sessions/{id}          - Session with its trials
	GET  /stats                  - Per-face counters and niceness
	GET  /leaderboard            - Best scores, ?limit=1..100

# Middleware

Applied to every request, in order: chi RequestID and RealIP, panic
recovery, CORS. Unknown paths and wrong methods get JSON 404 and 405
bodies.
*/
package router
