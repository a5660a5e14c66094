// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	r.Get("/stats", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Both lines carry the chi request ID when one is set.

# Panic Recovery

	r.Use(middleware.Recover)

A panic is logged with its stack and answered with a JSON 500.

# CORS Middleware

	r.Use(middleware.CORS("*"))

Allows methods GET, POST, OPTIONS with header Content-Type. Preflight
requests get 204 without reaching the handler.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Error bodies are {"error": "message"}.

Parse JSON request bodies:

	var req models.RecordResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
